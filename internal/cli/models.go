package cli

import (
	"github.com/spf13/cobra"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/models"
)

func modelsCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI models usable for sync and the tutor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return models.NewLister(GetOpenAIKey()).ListAvailableModels()
		},
	}
}
