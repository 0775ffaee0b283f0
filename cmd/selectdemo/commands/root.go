package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
)

var (
	itemFlags   []string
	selectFlags []string
	catalogPath string
	stylePath   string
	title       string
	language    string
	logLevel    string

	items    []selection.Item
	selected []selection.Item
	sheet    style.Sheet
)

func Execute() error {
	root := &cobra.Command{
		Use:          "selectdemo",
		Short:        "Controlled multi-select list demo",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			items, err = loadItems(catalogPath, itemFlags)
			if err != nil {
				return err
			}
			selected = pick(items, selectFlags)

			if stylePath != "" {
				if sheet, err = style.LoadSheet(stylePath); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.PersistentFlags().StringSliceVar(&itemFlags, "items", []string{"Apple", "Banana", "Cherry", "Dragon fruit", "Elderberry"}, "comma separated item labels")
	root.PersistentFlags().StringSliceVar(&selectFlags, "selected", nil, "ids of the initially selected items")
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "TOML file or URL of [[item]] tables with id and label (overrides --items)")
	root.PersistentFlags().StringVar(&stylePath, "style", "", "TOML style sheet")
	root.PersistentFlags().StringVar(&title, "title", "Pick some fruit", "list title")
	root.PersistentFlags().StringVar(&language, "lang", "", "language for built-in strings (e.g. de)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level: debug, info, warn or error")

	root.AddCommand(sdlCmd(), termCmd())
	return root.Execute()
}

type catalog struct {
	Items []struct {
		ID    any    `toml:"id"`
		Label string `toml:"label"`
	} `toml:"item"`
}

// loadItems reads structured items from path, or plain labels when path is
// empty.
func loadItems(path string, labels []string) ([]selection.Item, error) {
	if path == "" {
		return selection.Labels(labels...), nil
	}

	data, err := readCatalog(path)
	if err != nil {
		return nil, err
	}
	var c catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	out := make([]selection.Item, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, selection.Record(it.Label, it.ID))
	}
	return out, nil
}

// readCatalog reads a local file or an http(s) URL.
func readCatalog(path string) ([]byte, error) {
	if !strings.HasPrefix(path, "https://") && !strings.HasPrefix(path, "http://") {
		return os.ReadFile(path)
	}

	resp, err := http.Get(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog %s: %s", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// pick returns the items whose id prints as one of ids.
func pick(items []selection.Item, ids []string) []selection.Item {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	out := []selection.Item{}
	for _, it := range items {
		if e := selection.Normalize(it); want[e.ID.String()] {
			out = append(out, e)
		}
	}
	return out
}

func printSelection(entries []selection.Entry) {
	if len(entries) == 0 {
		fmt.Println("Nothing selected")
		return
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\n", e.ID, e.Text())
	}
}
