package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jredh-dev/hello/services/hello/config"
)

func TestWriteConfig(t *testing.T) {
	cfg := config.Config{
		Environment: config.Production,
		AppName:     "Test App",
		Version:     "1.0.0",
		GitCommit:   "abc123",
		GitHubRepo:  "https://github.com/user/repo.git",
	}

	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, cfg))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "production", got["environment"])
	assert.Equal(t, "Test App", got["app_name"])
	assert.Equal(t, "1.0.0", got["version"])
	assert.Equal(t, true, got["is_production"])
	assert.Equal(t, false, got["is_uat"])
	assert.Equal(t, false, got["is_development"])
	assert.Equal(t, "https://github.com/user/repo/commit/abc123", got["commit_url"])
}

func TestWriteVersion(t *testing.T) {
	var buf bytes.Buffer
	writeVersion(&buf)
	assert.Equal(t, "nexus-hello dev\nCommit: unknown\nBuilt: unknown\n", buf.String())
}
