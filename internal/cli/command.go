package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ananyadwivedi1010/TUF-Flash/internal"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/aisync"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/batch"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/logging"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/repository"
	"github.com/ananyadwivedi1010/TUF-Flash/internal/store"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tufflash",
		Short: "DSA flashcard studio with live AI sync",
		Long: `tufflash manages DSA study flashcards organized into categories.

It can pull fresh flashcard batches from a generative AI, chat with an
AI tutor, and serve the collections over HTTP for the web frontend.

Examples:
  tufflash categories list            # Show all categories
  tufflash cards add -c <id> -q ...   # Add a flashcard
  tufflash sync                       # Merge a fresh AI-generated batch
  tufflash serve                      # Start the HTTP API`,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(categoriesCommand(flags))
	rootCmd.AddCommand(cardsCommand(flags))
	rootCmd.AddCommand(syncCommand(flags))
	rootCmd.AddCommand(chatCommand(flags))
	rootCmd.AddCommand(serveCommand(flags))
	rootCmd.AddCommand(exportCommand(flags))
	rootCmd.AddCommand(modelsCommand(flags))

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.tufflash.yaml)")
	cmd.PersistentFlags().StringVar(&flags.DataDir, "data-dir", flags.DataDir, "Data directory (file backend) or database path prefix")
	cmd.PersistentFlags().StringVar(&flags.StorageBackend, "storage", flags.StorageBackend, "Storage backend (file or sqlite)")
	cmd.PersistentFlags().BoolVarP(&flags.AssumeYes, "yes", "y", false, "Skip delete confirmations")

	// AI flags
	cmd.PersistentFlags().StringVar(&flags.Provider, "ai-provider", flags.Provider, "Sync provider: openai or gemini")
	cmd.PersistentFlags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for sync")
	cmd.PersistentFlags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for sync")
	cmd.PersistentFlags().StringVar(&flags.ChatModel, "chat-model", flags.ChatModel, "OpenAI model for the tutor chat")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("storage.backend", cmd.PersistentFlags().Lookup("storage"))
	viper.BindPFlag("storage.data_dir", cmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("ai.provider", cmd.PersistentFlags().Lookup("ai-provider"))
	viper.BindPFlag("ai.openai_model", cmd.PersistentFlags().Lookup("openai-model"))
	viper.BindPFlag("ai.gemini_model", cmd.PersistentFlags().Lookup("gemini-model"))
	viper.BindPFlag("ai.chat_model", cmd.PersistentFlags().Lookup("chat-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".tufflash" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tufflash")
	}

	// Environment variables
	viper.SetEnvPrefix("TUFFLASH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("ai.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("ai.gemini_key")
}

// openStore opens the configured storage backend.
func openStore(flags *Flags) (store.Store, error) {
	backend := flags.StorageBackend
	path := flags.DataDir
	if backend == "sqlite" {
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		path = path + "/tufflash.db"
	}
	return store.Open(backend, path)
}

// openRepo loads the repository over the configured store. The returned
// store must be closed by the caller.
func openRepo(flags *Flags) (*repository.Repository, store.Store, error) {
	s, err := openStore(flags)
	if err != nil {
		return nil, nil, err
	}
	return repository.New(s, logging.Default()), s, nil
}

// newGenerator picks the candidate source: a batch file when given,
// otherwise the configured AI provider.
func newGenerator(flags *Flags) (aisync.Generator, error) {
	if flags.BatchFile != "" {
		return batch.NewFileGenerator(flags.BatchFile), nil
	}
	switch flags.Provider {
	case "openai":
		key := GetOpenAIKey()
		if key == "" {
			return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .tufflash.yaml")
		}
		return aisync.NewOpenAIGenerator(key, flags.OpenAIModel), nil
	case "gemini":
		key := GetGeminiKey()
		if key == "" {
			return nil, fmt.Errorf("Gemini API key not found. Set GEMINI_API_KEY environment variable or configure in .tufflash.yaml")
		}
		return aisync.NewGeminiGenerator(key, flags.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", flags.Provider)
	}
}

// confirm asks for an explicit yes on stdin unless --yes was given.
func confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
