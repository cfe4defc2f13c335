package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/sources"
	"github.com/kerbaras/anitrack/pkg/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	styles.Setup(false)
}

type fakeCatalog struct {
	anime     map[int]sources.Anime
	results   []sources.Anime
	lastLimit int
	searched  bool
}

func (f *fakeCatalog) Search(_ context.Context, _ string, limit int) ([]sources.Anime, error) {
	f.searched = true
	f.lastLimit = limit
	if limit > 0 && limit < len(f.results) {
		return f.results[:limit], nil
	}
	return f.results, nil
}

func (f *fakeCatalog) GetAnime(_ context.Context, id int) (*sources.Anime, error) {
	a, ok := f.anime[id]
	if !ok {
		return nil, sources.ErrNotFound
	}
	return &a, nil
}

func newFakeCatalog() *fakeCatalog {
	bebop := sources.Anime{ID: 1, Title: "Cowboy Bebop", Episodes: mo.Some(26), Type: mo.Some("TV"), Status: mo.Some("Finished Airing")}
	onePiece := sources.Anime{ID: 21, Title: "One Piece", Type: mo.Some("TV"), Status: mo.Some("Currently Airing")}
	return &fakeCatalog{
		anime:   map[int]sources.Anime{1: bebop, 21: onePiece},
		results: []sources.Anime{bebop, onePiece},
	}
}

type harness struct {
	t       *testing.T
	catalog *fakeCatalog
	dbPath  string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(where.EnvConfigPath, filepath.Join(dir, "config"))
	t.Cleanup(viper.Reset)

	return &harness{t: t, catalog: newFakeCatalog(), dbPath: filepath.Join(dir, "watchlist.db")}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	viper.Reset()

	rootCmd := newRootCmd(&options{newCatalog: func() sources.Catalog { return h.catalog }})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", h.dbPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, out)
	return out
}

func TestRootPrintsHelp(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun()
	assert.Contains(t, out, "Usage:")
	for _, name := range []string{"search", "add", "update", "delete", "list", "browse", "config"} {
		assert.Contains(t, out, name)
	}
}

func TestAddAndList(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("list")
	assert.Contains(t, out, "Your watchlist is empty!")

	out = h.mustRun("add", "1")
	assert.Contains(t, out, "Added Cowboy Bebop to watchlist!")

	h.mustRun("add", "21")

	out = h.mustRun("list")
	assert.Contains(t, out, "Your Watchlist (2)")
	assert.Contains(t, out, "Cowboy Bebop")
	assert.Contains(t, out, "0/26")
	assert.Contains(t, out, "0/Unknown")
	assert.Contains(t, out, "Not Rated")
}

func TestAddUnknownIDWritesNothing(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("add", "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anime with MAL ID 999 not found in catalog")

	out := h.mustRun("list")
	assert.Contains(t, out, "Your watchlist is empty!")
}

func TestReAddResetsProgress(t *testing.T) {
	h := newHarness(t)

	h.mustRun("add", "1")
	h.mustRun("update", "1", "12", "--rating", "9")
	assert.Contains(t, h.mustRun("list"), "12/26")

	h.mustRun("add", "1")
	out := h.mustRun("list")
	assert.Contains(t, out, "0/26")
	assert.Contains(t, out, "Not Rated")
	assert.Contains(t, out, "Your Watchlist (1)")
}

func TestAddKeepsRequestedID(t *testing.T) {
	h := newHarness(t)
	h.catalog.anime[5] = sources.Anime{ID: 6, Title: "Redirected"}

	out := h.mustRun("add", "5")
	assert.Contains(t, out, "Added Redirected to watchlist!")

	out = h.mustRun("delete", "5")
	assert.Contains(t, out, "Deleted Redirected from your watchlist!")
	assert.Contains(t, h.mustRun("list"), "Your watchlist is empty!")
}

func TestUpdate(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "1")

	out := h.mustRun("update", "1", "5", "--rating", "8.5")
	assert.Contains(t, out, "Updated progress for anime with MAL ID 1")

	out = h.mustRun("list")
	assert.Contains(t, out, "5/26")
	assert.Contains(t, out, "8.5")

	// rating is kept when omitted
	h.mustRun("update", "1", "6")
	out = h.mustRun("list")
	assert.Contains(t, out, "6/26")
	assert.Contains(t, out, "8.5")
}

func TestUpdateMissingID(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("update", "42", "3")
	assert.Contains(t, out, "No anime found with MAL ID 42 in your watchlist.")
	assert.Contains(t, h.mustRun("list"), "Your watchlist is empty!")
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "1")
	h.mustRun("add", "21")

	out := h.mustRun("delete", "21")
	assert.Contains(t, out, "Deleted One Piece from your watchlist!")

	out = h.mustRun("list")
	assert.Contains(t, out, "Your Watchlist (1)")
	assert.NotContains(t, out, "One Piece")

	out = h.mustRun("delete", "21")
	assert.Contains(t, out, "No anime found with MAL ID 21 in your watchlist.")
	assert.Contains(t, h.mustRun("list"), "Your Watchlist (1)")
}

func TestSearch(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("search", "cowboy", "bebop")
	assert.Contains(t, out, "Cowboy Bebop")
	assert.Contains(t, out, "One Piece")
	assert.Contains(t, out, "MAL ID")
	assert.Equal(t, 25, h.catalog.lastLimit)

	out = h.mustRun("search", "-n", "1", "bebop")
	assert.Equal(t, 1, h.catalog.lastLimit)
	assert.NotContains(t, out, "One Piece")

	// search never opens the watchlist
	_, err := os.Stat(h.dbPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSearchNoResults(t *testing.T) {
	h := newHarness(t)
	h.catalog.results = nil

	out := h.mustRun("search", "nothing")
	assert.Contains(t, out, "No results found.")
}

func TestArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"add without id", []string{"add"}},
		{"add with text id", []string{"add", "bebop"}},
		{"update with text episodes", []string{"update", "1", "five"}},
		{"update with missing episodes", []string{"update", "1"}},
		{"update with bad rating", []string{"update", "1", "5", "--rating", "great"}},
		{"delete with float id", []string{"delete", "1.5"}},
		{"search without query", []string{"search"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			_, err := h.run(tt.args...)
			require.Error(t, err)
			assert.False(t, h.catalog.searched)

			_, statErr := os.Stat(h.dbPath)
			assert.True(t, os.IsNotExist(statErr), "no store access on invalid input")
		})
	}
}

func TestConfigCommand(t *testing.T) {
	h := newHarness(t)
	t.Setenv("ANITRACK_CATALOG_LIMIT", "10")

	out := h.mustRun("config")
	assert.Contains(t, out, "catalog.limit")
	assert.Contains(t, out, "ANITRACK_CATALOG_LIMIT")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, h.dbPath)
}
