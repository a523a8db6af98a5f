package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ananyadwivedi1010/TUF-Flash/internal/chat"
)

func chatCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [question]",
		Short: "Ask the DSA tutor a question",
		Long: `chat starts an interactive session with the DSA tutor. When a question is
given as an argument it is answered once and the command exits, otherwise
questions are read from stdin until EOF.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := GetOpenAIKey()
			if apiKey == "" {
				return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .tufflash.yaml")
			}
			tutor := chat.NewTutor(apiKey, flags.ChatModel)

			onDelta := func(delta string) {
				fmt.Print(delta)
			}

			if len(args) > 0 {
				if _, err := tutor.Send(cmd.Context(), strings.Join(args, " "), onDelta); err != nil {
					return fmt.Errorf("tutor request failed: %w", err)
				}
				fmt.Println()
				return nil
			}

			fmt.Println("DSA tutor ready, ask away (Ctrl-D to quit).")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				query := strings.TrimSpace(scanner.Text())
				if query == "" {
					continue
				}
				if _, err := tutor.Send(cmd.Context(), query, onDelta); err != nil {
					return fmt.Errorf("tutor request failed: %w", err)
				}
				fmt.Println()
			}
			return scanner.Err()
		},
	}
}
