package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 3, cfg.Search.MinQueryLength)
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SEARCH_MIN_QUERY_LENGTH", "1")
	t.Setenv("POSTGRES_DB_NAME", "dash")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 1, cfg.Search.MinQueryLength)
	require.Contains(t, cfg.Postgres.DSN(), "dbname=dash")
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Server:   ServerConfig{Port: 8080},
		Postgres: PostgresConfig{Host: "db", User: "u", Password: "p", DBName: "d"},
	}
	require.NoError(t, cfg.Validate())

	cfg.Search.MinQueryLength = -1
	require.Error(t, cfg.Validate())

	cfg.Search.MinQueryLength = 0
	cfg.Postgres.Host = ""
	require.Error(t, cfg.Validate())
}

func TestSectionValidate(t *testing.T) {
	require.NoError(t, SearchConfig{}.Validate())
	require.NoError(t, SearchConfig{MinQueryLength: 3}.Validate())
	require.ErrorContains(t, SearchConfig{MinQueryLength: -2}.Validate(), "got -2")

	require.NoError(t, PostgresConfig{Host: "db", User: "u", Password: "p", DBName: "d"}.Validate())
	require.ErrorContains(t, PostgresConfig{Host: "db", User: "u", DBName: "d"}.Validate(), "credentials")
	require.ErrorContains(t, PostgresConfig{User: "u", Password: "p", DBName: "d"}.Validate(), "postgres.host")
}
