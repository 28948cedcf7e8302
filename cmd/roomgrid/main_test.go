package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomgrid/layout"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_SingleLayout(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-seed", "3", "-validate"}, &out, discard())
	require.NoError(t, err)

	var doc struct {
		Size     layout.Size         `json:"size"`
		Start    layout.Coordinate   `json:"start"`
		Grid     [][]string          `json:"grid"`
		MainPath []layout.Coordinate `json:"main_path"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, layout.DefaultSize(), doc.Size)
	assert.Equal(t, layout.Coordinate{Row: 0, Col: 1}, doc.Start)
	assert.Len(t, doc.Grid, 4)
	require.NotEmpty(t, doc.MainPath)
	assert.Equal(t, doc.Start, doc.MainPath[0])
}

func TestRun_BatchIsReproducible(t *testing.T) {
	args := []string{"-count", "5", "-workers", "3", "-seed", "11", "-width", "6", "-start-col", "2"}

	var a, b bytes.Buffer
	require.NoError(t, run(context.Background(), args, &a, discard()))
	require.NoError(t, run(context.Background(), args, &b, discard()))
	assert.Equal(t, a.String(), b.String())

	var docs []json.RawMessage
	require.NoError(t, json.Unmarshal(a.Bytes(), &docs))
	assert.Len(t, docs, 5)
}

func TestRun_ConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomgrid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"height": 2, "width": 3, "catalog": "permissive"}`), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", path, "-width", "5"}, &out, discard())
	require.NoError(t, err)

	var doc struct {
		Size layout.Size `json:"size"`
		Grid [][]string  `json:"grid"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, layout.Size{Height: 2, Width: 5}, doc.Size)
	for _, row := range doc.Grid {
		for _, name := range row {
			assert.Equal(t, "LeftRight", name)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t,
		run(context.Background(), []string{"-start-col", "9"}, &out, discard()),
		layout.ErrStartOutOfBounds)
	assert.Error(t, run(context.Background(), []string{"-catalog", "attic"}, &out, discard()))
	assert.Error(t, run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "nope.json")}, &out, discard()))
	assert.Error(t, run(context.Background(), []string{"-no-such-flag"}, &out, discard()))
	assert.Empty(t, out.String())
}
