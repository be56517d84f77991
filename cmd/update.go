package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/selfupdate"
)

var updateCheckOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update learnloop to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		if updateCheckOnly {
			return runUpdateCheck(ctx, checker)
		}
		return runUpdateApply(ctx, checker)
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "Only check whether a newer release exists")
}

// runUpdateCheck reports whether a newer release exists without installing it.
func runUpdateCheck(ctx context.Context, checker *selfupdate.Checker) error {
	res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		return err
	}
	switch {
	case res.CurrentVersion == "(devel)":
		fmt.Println("Development build; release checks are skipped.")
	case res.UpdateAvailable:
		fmt.Printf("Update available: %s -> %s\n", res.CurrentVersion, res.LatestVersion)
		fmt.Println("Run \"learnloop update\" to install it.")
	default:
		fmt.Println("You're on the latest version.")
	}
	return nil
}

// runUpdateApply downloads the latest release and swaps the binary in place.
func runUpdateApply(ctx context.Context, checker *selfupdate.Checker) error {
	input := &selfupdate.UpdateInput{CurrentVersion: version}
	err := checker.Update(ctx, input, func(p selfupdate.UpdateProgress) {
		fmt.Println(p.Message)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, selfupdate.ErrDevBuild):
		fmt.Println("This is a development build; install from a release to use self-update.")
		return nil
	case errors.Is(err, selfupdate.ErrAlreadyLatest):
		fmt.Println("You're on the latest version.")
		return nil
	case os.IsPermission(err):
		return fmt.Errorf("%w\n\ntry again with write access to the binary, e.g. sudo learnloop update", err)
	default:
		return err
	}
}
