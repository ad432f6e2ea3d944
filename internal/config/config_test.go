package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"http": { "addr": ":9090" },
		"db": { "host": "10.0.0.1", "port": "5433" },
		"game": { "maxPlayerAttempts": 8 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guiate.cfg.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, ":9090", viper.GetString("http.addr"))
	assert.Equal(t, "10.0.0.1", viper.GetString("db.host"))
	assert.Equal(t, "5433", viper.GetString("db.port"))
	assert.Equal(t, 8, viper.GetInt("game.maxPlayerAttempts"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guiate.cfg.json"), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./guiatelogs", viper.GetString("logsDir"))
	assert.Equal(t, ":8080", viper.GetString("http.addr"))
	assert.Equal(t, 15, viper.GetInt("world.timeoutSeconds"))
	assert.Equal(t, "gorm", viper.GetString("storage.type"))
	assert.Equal(t, "localhost", viper.GetString("db.host"))
	assert.Equal(t, "5432", viper.GetString("db.port"))
	assert.Equal(t, "postgres", viper.GetString("db.username"))
	assert.Equal(t, "postgres", viper.GetString("db.password"))
	assert.Equal(t, "guiate", viper.GetString("db.database"))
	assert.Equal(t, "./guiate.db", viper.GetString("sqlite.path"))
	assert.Equal(t, false, viper.GetBool("influx.enabled"))
	assert.Equal(t, "guiate-metrics", viper.GetString("influx.org"))
	assert.Equal(t, false, viper.GetBool("graylog.enabled"))
	assert.Equal(t, "localhost:12201", viper.GetString("graylog.address"))
	assert.Equal(t, 50, viper.GetInt("game.winDistanceKm"))
	assert.Equal(t, 6, viper.GetInt("game.maxPlayerAttempts"))
	assert.Equal(t, 50, viper.GetInt("game.rankingLimit"))
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "info", viper.GetString("logLevel"))
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guiate.cfg.json"), []byte(`{not json`), 0644))

	err := Load(dir)
	assert.Error(t, err)
}

func TestHelpers(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("logLevel", "warn")
	viper.Set("game.winDistanceKm", 75)
	viper.Set("influx.enabled", true)

	assert.Equal(t, "warn", GetString("logLevel"))
	assert.Equal(t, 75, GetInt("game.winDistanceKm"))
	assert.Equal(t, true, GetBool("influx.enabled"))
}
