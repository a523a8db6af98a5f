package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/aisync"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/logging"
)

func syncCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Merge a fresh AI-generated flashcard batch",
		Long: `sync asks the configured AI provider for a batch of DSA flashcards and
merges it into the collections. Categories are matched by name
(case-insensitive), flashcards with an already known question are skipped,
and nothing is committed if the provider call fails.

With --batch the candidates are read from a local file instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			gen, err := newGenerator(flags)
			if err != nil {
				return err
			}

			fmt.Println("Fetching live data...")
			importer := aisync.NewImporter(repo, gen, logging.Default())
			report, err := importer.Import(cmd.Context())
			if err != nil {
				return fmt.Errorf("live sync failed, ensure your API key is active: %w", err)
			}

			fmt.Printf("Imported %d flashcards (%d duplicates skipped, %d new categories)\n",
				report.Imported, report.Skipped, report.NewCategories)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Read candidates from a file instead of calling the AI provider")

	return cmd
}
