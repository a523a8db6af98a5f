package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "tufflash" {
		t.Errorf("Expected Use to be 'tufflash', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "flashcard") {
		t.Errorf("Expected Short description to mention flashcards")
	}

	// Test that persistent flags are set up
	flagTests := []string{
		"config",
		"data-dir",
		"storage",
		"yes",
		"ai-provider",
		"openai-model",
		"gemini-model",
		"chat-model",
	}

	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			var flag *pflag.Flag = cmd.PersistentFlags().Lookup(name)
			if flag == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	// Test that all subcommands are registered
	subcommands := []string{"categories", "cards", "sync", "chat", "serve", "export", "models"}
	for _, name := range subcommands {
		t.Run("subcommand_"+name, func(t *testing.T) {
			for _, sub := range cmd.Commands() {
				if sub.Name() == name {
					return
				}
			}
			t.Errorf("Expected subcommand %s to be registered", name)
		})
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()
	InitConfig("")

	// Test environment variable prefix
	os.Setenv("TUFFLASH_TEST_VAR", "test-value")
	defer os.Unsetenv("TUFFLASH_TEST_VAR")

	if viper.GetString("test_var") != "test-value" {
		t.Error("Environment variable not properly loaded")
	}
}

func TestGetOpenAIKey(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{
			name:      "from environment",
			envKey:    "env-test-key",
			configKey: "config-test-key",
			expected:  "env-test-key",
		},
		{
			name:      "from config when no env",
			envKey:    "",
			configKey: "config-test-key",
			expected:  "config-test-key",
		},
		{
			name:      "empty when neither set",
			envKey:    "",
			configKey: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			if tt.envKey != "" {
				os.Setenv("OPENAI_API_KEY", tt.envKey)
				defer os.Unsetenv("OPENAI_API_KEY")
			} else {
				os.Unsetenv("OPENAI_API_KEY")
			}

			if tt.configKey != "" {
				viper.Set("ai.openai_key", tt.configKey)
			}

			got := GetOpenAIKey()
			if got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewGeneratorUnknownProvider(t *testing.T) {
	flags := NewFlags()
	flags.Provider = "anthropic"

	if _, err := newGenerator(flags); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewGeneratorBatchFile(t *testing.T) {
	flags := NewFlags()
	flags.BatchFile = "cards.txt"

	gen, err := newGenerator(flags)
	if err != nil {
		t.Fatalf("newGenerator() error = %v", err)
	}
	if gen == nil {
		t.Error("Expected a batch file generator")
	}
}
