package cli

import (
	"github.com/spf13/cobra"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/aisync"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/api"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/auth"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/logging"
)

func serveCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `serve exposes the flashcard collections over HTTP: category and card
CRUD, reveal toggling, AI sync and authentication. The AI sync endpoint is
only enabled when an API key for the configured provider is available.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, s, err := openRepo(flags)
			if err != nil {
				return err
			}
			defer s.Close()

			log := logging.Default()

			// The sync endpoint is optional, the server runs without a key.
			var importer *aisync.Importer
			if gen, err := newGenerator(flags); err == nil {
				importer = aisync.NewImporter(repo, gen, log)
			} else {
				log.Warn(cmd.Context(), "AI sync disabled", "error", err)
			}

			server := api.New(repo, importer, auth.New(s), log, flags.ServerAddr)
			return server.Run()
		},
	}

	cmd.Flags().StringVar(&flags.ServerAddr, "addr", flags.ServerAddr, "Listen address for the HTTP server")

	return cmd
}
