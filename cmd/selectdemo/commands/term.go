package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/term"
)

// owner holds the selection for the terminal list and accepts every toggle.
type owner struct {
	list     term.Model
	selected []selection.Item
}

func (o owner) Init() tea.Cmd {
	return o.list.Init()
}

func (o owner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if change, ok := msg.(term.SelectionsChangeMsg); ok {
		o.selected = selection.Items(change.Next)
		o.list = o.list.SetSelectedItems(o.selected)
		return o, nil
	}

	next, cmd := o.list.Update(msg)
	o.list = next.(term.Model)
	return o, cmd
}

func (o owner) View() string {
	return o.list.View()
}

func termCmd() *cobra.Command {
	var mouse bool

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Pick items in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			selectmultiple.SetLanguage(language)

			list, err := term.New(term.Props{
				Items:         items,
				SelectedItems: selected,
				Title:         title,
				Sheet:         sheet,
				Localizer:     selectmultiple.Localizer(),
			})
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{tea.WithAltScreen()}
			if mouse {
				opts = append(opts, tea.WithMouseCellMotion())
			}

			final, err := tea.NewProgram(owner{list: list, selected: selected}, opts...).Run()
			if err != nil {
				return err
			}

			o := final.(owner)
			if !o.list.Confirmed() {
				return selectmultiple.ErrCancelled
			}
			printSelection(selection.NormalizeAll(o.selected))
			return nil
		},
	}

	cmd.Flags().BoolVar(&mouse, "mouse", true, "toggle rows by clicking")
	return cmd
}
