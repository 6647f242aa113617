package repl

import (
	"os"
	"path/filepath"
)

// historyFilePath returns where readline should persist command
// history across sessions. It degrades to an empty string (readline
// disables history persistence, keeping only the in-memory list) if
// the user's home directory cannot be determined.
func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".srclang_history")
}
