package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/fee-referendum/pledge"
	"github.com/danielhkuo/fee-referendum/tui"
)

// tuiCmd starts the interactive slider and pledge form
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive fee slider and pledge form",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	sender, cfgErr := pledgeSender()

	flow := pledge.NewFlow(sender, pledge.WithLogger(logger))
	model := tui.New(flow).WithContext(cmd.Context())
	if cfgErr != nil {
		model = model.WithNotice("Pledging is unavailable: " + cfgErr.Error())
	}

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}

// pledgeSender returns the configured client, or an offlineSender and the
// configuration error that kept the client from being built
func pledgeSender() (pledge.Sender, error) {
	client, err := loadClient()
	if err != nil {
		return offlineSender{reason: err}, err
	}
	return client, nil
}
