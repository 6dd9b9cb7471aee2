package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"docqa/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat FILE...",
	Short: "Index files and chat about them in the terminal",
	Long: `Index the given .txt or .pdf files as one document and open a terminal chat.

Key bindings:
  Enter      Ask
  Up/Down    Browse the sources of the last answer
  Ctrl+C     Quit`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp()
		if err != nil {
			return err
		}
		text, err := readDocuments(args)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		res, err := app.Pipeline.Ingest(ctx, text)
		if err != nil {
			return err
		}

		m := tui.New(ctx, app.Assistant, res.Summary, app.Config.Retrieval.TopK)
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}
