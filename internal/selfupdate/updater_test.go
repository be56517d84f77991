package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	cases := []struct {
		os, arch string
		want     string // empty means an error is expected
	}{
		{"darwin", "amd64", "learnloop_Darwin_all.tar.gz"},
		{"darwin", "arm64", "learnloop_Darwin_all.tar.gz"},
		{"linux", "amd64", "learnloop_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "learnloop_Linux_arm64.tar.gz"},
		{"linux", "386", "learnloop_Linux_i386.tar.gz"},
		{"windows", "amd64", "learnloop_Windows_x86_64.zip"},
		{"windows", "arm64", "learnloop_Windows_arm64.zip"},
		{"freebsd", "amd64", ""},
		{"linux", "mips", ""},
	}

	for _, tc := range cases {
		t.Run(tc.os+"_"+tc.arch, func(t *testing.T) {
			got, err := assetNameFor(tc.os, tc.arch)
			if tc.want == "" {
				assert.ErrorContains(t, err, "unsupported")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		manifest := "1f2e3d  learnloop_Linux_x86_64.tar.gz\n4a5b6c  learnloop_Darwin_all.tar.gz\n"
		got := parseChecksums([]byte(manifest))
		assert.Equal(t, "1f2e3d", got["learnloop_Linux_x86_64.tar.gz"])
		assert.Equal(t, "4a5b6c", got["learnloop_Darwin_all.tar.gz"])
		assert.Len(t, got, 2)
	})

	t.Run("skips junk lines", func(t *testing.T) {
		manifest := "not-a-sum-line\n\n   \n9e8f7a  good.tar.gz\none two three\n"
		got := parseChecksums([]byte(manifest))
		assert.Equal(t, map[string]string{"good.tar.gz": "9e8f7a"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, parseChecksums(nil))
	})
}

func TestVerifyChecksum(t *testing.T) {
	payload := []byte("release archive bytes")

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyChecksum(payload, sha256Hex(payload)))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyChecksum(payload, sha256Hex([]byte("something else")))
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("fake elf contents")

	t.Run("tar.gz with extra files", func(t *testing.T) {
		archive := tarball(t, map[string][]byte{
			"README.md": []byte("docs"),
			"learnloop": binary,
		})
		got, err := extractBinary(archive, "learnloop_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("tar.gz with nested path", func(t *testing.T) {
		archive := tarball(t, map[string][]byte{"dist/learnloop": binary})
		got, err := extractBinary(archive, "learnloop_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("zip for windows", func(t *testing.T) {
		archive := zipball(t, map[string][]byte{"learnloop.exe": binary})
		got, err := extractBinary(archive, "learnloop_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("binary absent", func(t *testing.T) {
		archive := tarball(t, map[string][]byte{"README.md": []byte("docs")})
		_, err := extractBinary(archive, "learnloop_Linux_x86_64.tar.gz")
		assert.ErrorContains(t, err, "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("replaces content and keeps mode", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "learnloop")
		require.NoError(t, os.WriteFile(target, []byte("old build"), 0700))

		next := []byte("next build")
		sum := sha256.Sum256(next)
		require.NoError(t, applyUpdate(next, target, sum[:]))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, next, got)

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	})

	t.Run("missing target", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "nope")
		sum := sha256.Sum256([]byte("x"))
		err := applyUpdate([]byte("x"), target, sum[:])
		assert.ErrorContains(t, err, "stat target")
	})

	t.Run("hash mismatch aborts", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "learnloop")
		require.NoError(t, os.WriteFile(target, []byte("old build"), 0755))

		wrong := sha256.Sum256([]byte("different content"))
		err := applyUpdate([]byte("next build"), target, wrong[:])
		assert.ErrorIs(t, err, ErrChecksum)

		// The original binary must survive an aborted apply.
		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, []byte("old build"), got)
	})
}

func TestUpdate(t *testing.T) {
	binary := []byte("fresh learnloop build")

	// Update resolves the asset from the runtime platform, so the fixture
	// has to serve whatever archive this test host would download.
	asset, err := assetName()
	require.NoError(t, err)
	archive := tarball(t, map[string][]byte{"learnloop": binary})
	if strings.HasSuffix(asset, ".zip") {
		archive = zipball(t, map[string][]byte{"learnloop.exe": binary})
	}

	goodRelease := fakeRelease{
		tag:       "v2.0.0",
		asset:     asset,
		archive:   archive,
		checksums: sha256Hex(archive) + "  " + asset + "\n",
	}

	t.Run("installs latest release", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "learnloop")
		require.NoError(t, os.WriteFile(execPath, []byte("old build"), 0755))

		srv := goodRelease.serve(t)
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("explicit target skips version check", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "learnloop")
		require.NoError(t, os.WriteFile(execPath, []byte("old build"), 0755))

		srv := goodRelease.serve(t)
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		input := &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v2.0.0"}
		err := checker.Update(context.Background(), input, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("no newer release", func(t *testing.T) {
		current := fakeRelease{tag: "v1.0.0"}
		srv := current.serve(t)

		checker := NewChecker(WithBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("corrupt archive", func(t *testing.T) {
		bad := fakeRelease{
			tag:       "v2.0.0",
			asset:     asset,
			archive:   archive,
			checksums: strings.Repeat("0", 64) + "  " + asset + "\n",
		}
		srv := bad.serve(t)

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("asset missing from release", func(t *testing.T) {
		bare := fakeRelease{tag: "v2.0.0"}
		srv := bare.serve(t)

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorContains(t, err, "fetch archive")
	})
}

// fakeRelease serves the release API and download endpoints for one tag.
// Endpoints whose fixture field is empty return 404, which lets tests
// simulate missing assets.
type fakeRelease struct {
	tag       string
	asset     string
	archive   []byte
	checksums string
}

func (f fakeRelease) serve(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/learnloop/learnloop/releases/latest", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/releases/%s"}`, f.tag, f.tag)
	})
	base := fmt.Sprintf("/learnloop/learnloop/releases/download/%s/", f.tag)
	if f.archive != nil {
		mux.HandleFunc(base+f.asset, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(f.archive)
		})
	}
	if f.checksums != "" {
		mux.HandleFunc(base+"checksums.txt", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, f.checksums)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// tarball builds a gzipped tar archive from the given files.
func tarball(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0755,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// zipball builds a zip archive from the given files.
func zipball(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
