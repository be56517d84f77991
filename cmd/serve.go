package cmd

import (
	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/logging"
	"github.com/learnloop/learnloop/internal/server"
	"github.com/learnloop/learnloop/internal/track"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the learnloop backend API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log := logging.New(cfg.Log.Dir, cfg.LogLevel(), true)
		defer log.Sync()

		addr := cfg.Server.Addr
		if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
			addr = flagAddr
		}

		srv := server.New(server.Options{
			Addr:      addr,
			Mode:      cfg.Server.Mode,
			Generator: buildGenerator(cmd.Context(), cfg, log),
			Tracker:   track.New(trackConfig(cfg)),
			Log:       log,
		})
		return srv.Run()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr from config)")
}
