package cli

import (
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	DataDir        string
	StorageBackend string
	AssumeYes      bool

	// AI flags
	Provider    string
	OpenAIModel string
	GeminiModel string
	ChatModel   string

	// Sync flags
	BatchFile string

	// Server flags
	ServerAddr string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	home, _ := os.UserHomeDir()
	return &Flags{
		DataDir:        filepath.Join(home, ".local", "state", "tufflash"),
		StorageBackend: "file",
		Provider:       "openai",
		OpenAIModel:    openai.GPT4oMini,
		GeminiModel:    "gemini-3-flash-preview",
		ChatModel:      openai.GPT4oMini,
		ServerAddr:     ":8080",
	}
}
