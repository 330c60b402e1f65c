package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cribbage-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("CRIBBAGE_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("CRIBBAGE_MIGRATIONS_PATH", "/opt/sql")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()

	a.Equal("postgres://postgres@localhost:5432/cribbage?sslmode=disable", cfg.PGDSN)
	a.Equal("greedy", cfg.DefaultOpponent)
	a.Equal("debug", cfg.Log.Level)

	// the environment wins over the file
	a.Equal("/opt/sql", cfg.MigrationsPath)

	// ensure we aren't handing out a pointer
	cfg.DefaultOpponent = "bad"
	a.Equal("greedy", Instance().DefaultOpponent)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("CRIBBAGE_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal("random", cfg.DefaultOpponent)
	a.Equal("./sql", cfg.MigrationsPath)
}
