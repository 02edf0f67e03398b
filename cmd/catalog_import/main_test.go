package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(addr string) *config.Config {
	return &config.Config{
		Logger:  config.LoggerConfig{Engine: "slog", Level: "error"},
		Gin:     config.GinConfig{Mode: "test"},
		Storage: config.StorageConfig{Driver: config.DriverRedis},
		Redis:   config.RedisConfig{Addr: addr, KeyPrefix: "test:"},
	}
}

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "destinations.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_ImportsIntoRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	seed := writeSeed(t, `[{"id": 1, "name": "Goa", "pricePerNight": 2000}, {"id": "2", "name": "Manali"}]`)

	require.NoError(t, run(context.Background(), redisConfig(mr.Addr()), seed))

	list, err := mr.List("test:destinations")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRun_ClosesStorageOnImportError(t *testing.T) {
	mr := miniredis.RunT(t)
	seed := writeSeed(t, `{not json`)

	err := run(context.Background(), redisConfig(mr.Addr()), seed)
	require.Error(t, err)

	assert.Eventually(t, func() bool {
		return mr.CurrentConnectionCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRun_ClosesStorageWhenSeedMissing(t *testing.T) {
	mr := miniredis.RunT(t)

	err := run(context.Background(), redisConfig(mr.Addr()), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	assert.Eventually(t, func() bool {
		return mr.CurrentConnectionCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRun_RefusesFileDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverFile, DataDir: "data"}}

	err := run(context.Background(), cfg, "data/destinations.json")

	assert.ErrorContains(t, err, "nothing to import")
}
