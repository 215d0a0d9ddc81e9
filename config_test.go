package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigLoad(t *testing.T) {
	path := writeConfig(t, "port: /dev/ttyUSB0\nbaud: 115200\ntimeout: 250\ncolor: \"#00FF00\"\n")

	var cfg appConfig
	require.NoError(t, cfg.load(path))
	require.Equal(t, appConfig{Port: "/dev/ttyUSB0", Baud: 115200, Timeout: 250, Color: "#00FF00"}, cfg)
}

func TestConfigLoadKeepsUnsetFields(t *testing.T) {
	path := writeConfig(t, "baud: 57600\n")

	cfg := appConfig{Baud: 9600, Timeout: 500, Color: "#FFFFFF"}
	require.NoError(t, cfg.load(path))
	require.Equal(t, appConfig{Baud: 57600, Timeout: 500, Color: "#FFFFFF"}, cfg)
}

func TestConfigLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "bogus: 1\n")

	var cfg appConfig
	require.Error(t, cfg.load(path))
}

func TestConfigLoadMissingFile(t *testing.T) {
	var cfg appConfig
	require.Error(t, cfg.load(filepath.Join(t.TempDir(), "nope.yml")))
}
