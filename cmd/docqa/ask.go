package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	askFiles []string
	askTopK  int
	askShow  bool
)

var askCmd = &cobra.Command{
	Use:   "ask --file FILE QUESTION",
	Short: "Answer one question about the given files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(askFiles) == 0 {
			return fmt.Errorf("at least one --file is required")
		}
		app, err := loadApp()
		if err != nil {
			return err
		}
		text, err := readDocuments(askFiles)
		if err != nil {
			return err
		}
		if _, err := app.Pipeline.Ingest(cmd.Context(), text); err != nil {
			return err
		}

		answer, err := app.Assistant.Ask(cmd.Context(), strings.Join(args, " "), askTopK)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if answer.Reply != "" {
			fmt.Fprintln(out, answer.Reply)
		}
		if askShow || answer.Reply == "" {
			for _, s := range answer.Sources {
				fmt.Fprintf(out, "\n[chunk %d, distance %.3f]\n%s\n", s.Chunk.Index, s.Distance, s.Chunk.Text)
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringSliceVarP(&askFiles, "file", "f", nil, "document to index (.txt or .pdf, repeatable)")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of chunks to retrieve (default retrieval.top_k)")
	askCmd.Flags().BoolVar(&askShow, "sources", false, "print the retrieved chunks after the reply")
}
