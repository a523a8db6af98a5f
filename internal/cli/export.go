package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/export"
)

func exportCommand(flags *Flags) *cobra.Command {
	options := export.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all flashcards to an Anki-compatible CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			cats, cards := repo.Snapshot()
			gen := export.NewGenerator(options)
			if err := gen.GenerateCSV(cats, cards); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Printf("Exported %d flashcards to %s\n", len(cards), options.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&options.OutputPath, "output", "o", options.OutputPath, "Output CSV file path")
	cmd.Flags().BoolVar(&options.IncludeHeaders, "headers", options.IncludeHeaders, "Include a header row")
	cmd.Flags().BoolVar(&options.WithAttachment, "mark-attachments", options.WithAttachment, "Add a column marking cards with attachments")

	return cmd
}
