package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("CONFIG_PATH", path)
}

func TestLoad(t *testing.T) {
	writeConfig(t, `
listen_addr: ":9000"
staging_dir: /tmp/staging
content_dir: /tmp/content
`)

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.ListenAddr)
	assert.Equal(t, "/tmp/staging", c.StagingDir)
	// Дефолты добиваются для незаполненных полей.
	assert.Equal(t, "fs", c.ContentBackend)
	assert.Equal(t, "memory://", c.MetaDSN)
	assert.Equal(t, 24, c.GCTTLHours)
	assert.Equal(t, 30, c.GCIntervalMin)
}

func TestLoad_EnvOverrides(t *testing.T) {
	writeConfig(t, `
listen_addr: ":9000"
staging_dir: /tmp/staging
content_dir: /tmp/content
`)
	t.Setenv("LISTEN_ADDR", ":8081")
	t.Setenv("META_DSN", "postgres://u:p@localhost:5432/share")
	t.Setenv("CONTENT_BACKEND", "s3")
	t.Setenv("S3_ENDPOINT", "localhost:9000")
	t.Setenv("S3_BUCKET", "blobs")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", c.ListenAddr)
	assert.Equal(t, "postgres://u:p@localhost:5432/share", c.MetaDSN)
	assert.Equal(t, "s3", c.ContentBackend)
	assert.Equal(t, "localhost:9000", c.S3.Endpoint)
	assert.Equal(t, "blobs", c.S3.Bucket)
}

func TestLoad_InvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing listen_addr", "staging_dir: /tmp/s\ncontent_dir: /tmp/c\n"},
		{"missing staging_dir", "listen_addr: \":9000\"\ncontent_dir: /tmp/c\n"},
		{"unknown backend", "listen_addr: \":9000\"\nstaging_dir: /tmp/s\ncontent_backend: ftp\n"},
		{"fs without content_dir", "listen_addr: \":9000\"\nstaging_dir: /tmp/s\ncontent_backend: fs\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			writeConfig(t, tc.body)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
