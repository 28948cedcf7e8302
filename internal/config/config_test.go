package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgrid/internal/config"
	"github.com/katalvlaran/roomgrid/layout"
	"github.com/katalvlaran/roomgrid/roomtype"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roomgrid.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_KeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := config.Load(writeFile(t, `{"seed": 9, "width": 6, "catalog": "permissive"}`))
	require.NoError(t, err)

	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, 4, cfg.Height)
	assert.Equal(t, 1, cfg.Count)
	assert.Equal(t, "permissive", cfg.Catalog)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, `{"seed": "nope"}`))
	assert.Error(t, err)
}

func TestMerge_ExplicitFlagsWin(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 77
	cfg.Width = 8

	fromFile := config.DefaultConfig()
	fromFile.Seed = 5
	fromFile.Width = 3
	fromFile.Height = 9
	fromFile.Validate = true

	config.Merge(cfg, fromFile, map[string]bool{"seed": true})

	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
	assert.True(t, cfg.Validate)
}

func TestRoomCatalog(t *testing.T) {
	cfg := config.DefaultConfig()
	cat, err := cfg.RoomCatalog()
	require.NoError(t, err)
	assert.Equal(t, roomtype.Names(roomtype.Standard()), roomtype.Names(cat))

	cfg.Catalog = "permissive"
	cat, err = cfg.RoomCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"LeftRight"}, roomtype.Names(cat))

	cfg.Catalog = "attic"
	_, err = cfg.RoomCatalog()
	assert.ErrorIs(t, err, config.ErrUnknownCatalog)
}

func TestNewGenerator(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Height, cfg.Width = 3, 7
	cfg.StartCol = 6
	g, err := cfg.NewGenerator()
	require.NoError(t, err)
	assert.Equal(t, layout.Size{Height: 3, Width: 7}, g.Size())
	assert.Equal(t, layout.Coordinate{Row: 0, Col: 6}, g.Start())

	cfg.StartCol = 7
	_, err = cfg.NewGenerator()
	assert.ErrorIs(t, err, layout.ErrStartOutOfBounds)

	cfg.StartCol = 0
	cfg.SideWeight = 0
	_, err = cfg.NewGenerator()
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg.SideWeight = 2
	cfg.StepBudget = -3
	_, err = cfg.NewGenerator()
	assert.ErrorIs(t, err, layout.ErrOptionViolation)
}
