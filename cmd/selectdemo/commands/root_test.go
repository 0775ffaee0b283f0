package commands

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
)

const fruitCatalog = `
[[item]]
id = 1
label = "Apple"

[[item]]
id = 2
label = "Banana"
`

func TestLoadItemsFromLabels(t *testing.T) {
	items, err := loadItems("", []string{"Apple", "Banana"})
	require.NoError(t, err)
	require.Equal(t, selection.Labels("Apple", "Banana"), items)
}

func TestLoadItemsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(fruitCatalog), 0o600))

	items, err := loadItems(path, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := selection.Normalize(items[0])
	require.Equal(t, "Apple", first.Text())
	require.Equal(t, int64(1), first.ID.Value())
}

func TestLoadItemsFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(fruitCatalog))
	}))
	defer srv.Close()

	items, err := loadItems(srv.URL, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestLoadItemsBadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[item]\n"), 0o600))

	_, err := loadItems(path, nil)
	require.Error(t, err)
}

func TestPickMatchesPrintedIDs(t *testing.T) {
	items := []selection.Item{
		selection.Record("Apple", int64(1)),
		selection.Record("Banana", int64(2)),
		selection.Label("Cherry"),
	}

	got := pick(items, []string{"2", "Cherry", "missing"})
	require.Len(t, got, 2)
	require.Equal(t, "Banana", selection.Normalize(got[0]).Text())
	require.Equal(t, "Cherry", selection.Normalize(got[1]).Text())

	require.Empty(t, pick(items, nil))
}
