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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "parlo_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "parlo_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "parlo_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "parlo_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "parlo_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "parlo_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "parlo_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	t.Run("goreleaser format", func(t *testing.T) {
		got := parseChecksums([]byte("abc123  parlo_Darwin_all.tar.gz\ndef456  parlo_Linux_x86_64.tar.gz\n"))
		assert.Equal(t, map[string]string{
			"parlo_Darwin_all.tar.gz":   "abc123",
			"parlo_Linux_x86_64.tar.gz": "def456",
		}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, parseChecksums(nil))
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		got := parseChecksums([]byte("abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n"))
		assert.Equal(t, map[string]string{
			"file.tar.gz":  "abc123",
			"other.tar.gz": "ghi789",
		}, got)
	})
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho parlo")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "parlo", content)
		got, err := extractBinary(archive, "parlo_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := buildZip(t, "parlo.exe", content)
		got, err := extractBinary(archive, "parlo_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", content)
		_, err := extractBinary(archive, "parlo_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "parlo")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	sum := sha256.Sum256(newData)
	require.NoError(t, applyUpdate(newData, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "mode of the old binary should carry over")
}

// releaseServer serves a fake GitHub API and release download tree for a
// single v2.0.0 release.
func releaseServer(t *testing.T, asset string, archive, checksums []byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/parlolabs/parlo/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
	})
	if archive != nil {
		mux.HandleFunc("/parlolabs/parlo/releases/download/v2.0.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(archive)
		})
	}
	if checksums != nil {
		mux.HandleFunc("/parlolabs/parlo/releases/download/v2.0.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(checksums)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	asset, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	binaryContent := []byte("new-parlo-binary")
	archive := buildTarGz(t, "parlo", binaryContent)
	archiveSum := sha256.Sum256(archive)
	goodChecksums := []byte(fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), asset))

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "parlo")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		srv := releaseServer(t, asset, archive, goodChecksums)
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
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		t.Cleanup(srv.Close)

		checker := NewChecker(WithBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := []byte(fmt.Sprintf("%s  %s\n",
			"0000000000000000000000000000000000000000000000000000000000000000", asset))
		srv := releaseServer(t, asset, archive, bad)

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("archive download failure", func(t *testing.T) {
		srv := releaseServer(t, asset, nil, nil)

		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
