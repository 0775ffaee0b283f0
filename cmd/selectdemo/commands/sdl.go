package commands

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/router"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
)

const (
	screenSelect router.Screen = iota
	screenConfirm
)

type selectInput struct {
	Selected []selection.Item
	Focus    int
	Start    int
}

// Resume reopens the list where it was left, keeping the selection.
func (in selectInput) Resume(state any) any {
	out, ok := state.(selectOutput)
	if !ok {
		return in
	}
	return selectInput{Selected: selection.Items(out.Selected), Focus: out.Focus, Start: out.Start}
}

type selectOutput struct {
	Selected []selection.Entry
	Focus    int
	Start    int
}

func sdlCmd() *cobra.Command {
	var (
		fontPath    string
		mappingPath string
		flip        bool
		powerButton bool
		logPath     string
	)

	cmd := &cobra.Command{
		Use:   "sdl",
		Short: "Pick items in an SDL window",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := selectmultiple.Init(selectmultiple.Options{
				WindowTitle:          "Select Multiple",
				ShowBackground:       true,
				FontPath:             fontPath,
				ControllerConfigFile: mappingPath,
				FlipFaceButtons:      flip,
				Language:             language,
				PowerButton:          powerButton,
				LogPath:              logPath,
			})
			if err != nil {
				return err
			}
			defer selectmultiple.Close()
			selectmultiple.SetRawLogLevel(logLevel)

			var final []selection.Entry
			confirmed := false

			r := router.New().CancelAs(selectmultiple.IsCancelled)
			r.Register(screenSelect, router.Typed(runSelect))
			r.Register(screenConfirm, router.Typed(runConfirm))
			r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
				switch from {
				case screenSelect:
					if router.IsCancelled(result) {
						return router.ScreenExit, nil
					}
					out := result.(selectOutput)
					stack.Push(screenSelect, selectInput{Selected: selection.Items(out.Selected)}, out)
					return screenConfirm, out

				case screenConfirm:
					if router.IsCancelled(result) || !result.(bool) {
						return stack.Back()
					}
					if entry := stack.Peek(); entry != nil {
						final = entry.Resume.(selectOutput).Selected
					}
					confirmed = true
					return router.ScreenExit, nil
				}
				return router.ScreenExit, nil
			})

			if err := r.Run(screenSelect, selectInput{Selected: selected}); err != nil {
				return err
			}
			if !confirmed {
				return selectmultiple.ErrCancelled
			}
			printSelection(final)
			return nil
		},
	}

	cmd.Flags().StringVar(&fontPath, "font", "", "TTF font path")
	cmd.Flags().StringVar(&mappingPath, "mapping", "", "JSON controller mapping")
	cmd.Flags().BoolVar(&flip, "flip-face-buttons", false, "map A and B by label instead of position")
	cmd.Flags().BoolVar(&powerButton, "power-button", false, "handle the device power button")
	cmd.Flags().StringVar(&logPath, "log-file", "", "log file path")
	return cmd
}

// runSelect owns the selection while the list is shown: every toggle is
// accepted and handed straight back.
func runSelect(in selectInput) (selectOutput, error) {
	logger := selectmultiple.GetLogger()

	var sm *selectmultiple.SelectMultiple
	props := selectmultiple.Props{
		Items:         items,
		SelectedItems: in.Selected,
		ListViewProps: selectmultiple.ListSettings{
			Title:        title,
			InitialFocus: in.Focus,
			VisibleStart: in.Start,
		},
	}.WithSheet(sheet)

	props.OnSelectionsChange = func(next []selection.Entry, toggled selection.Entry) {
		logger.Info("Selection changed", "toggled", toggled.ID.String(), "count", len(next))
		props.SelectedItems = selection.Items(next)
		if err := sm.SetProps(props); err != nil {
			logger.Error("Failed to apply selection", "error", err)
		}
	}

	sm, err := selectmultiple.New(props)
	if err != nil {
		return selectOutput{}, err
	}
	defer sm.Destroy()

	res, err := sm.Run()
	if err != nil {
		return selectOutput{}, err
	}
	return selectOutput{Selected: res.Selected, Focus: res.FocusIndex, Start: res.VisibleStartIndex}, nil
}

func runConfirm(in selectOutput) (bool, error) {
	message := selectmultiple.Localizer().ConfirmSelection(len(in.Selected))
	res, err := selectmultiple.Confirm(message, nil, selectmultiple.ConfirmSettings{})
	if err != nil {
		return false, err
	}
	selectmultiple.GetLogger().Debug("Confirm answered", "confirmed", res.Confirmed, "index", res.SelectedIndex)
	return res.Confirmed, nil
}
