package paths

import (
	"os"
	"path/filepath"
)

// GetTrainmergeHome returns TRAINMERGE_HOME or the ~/.trainmerge default
func GetTrainmergeHome() string {
	home := os.Getenv("TRAINMERGE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".trainmerge"
		}
		return filepath.Join(homeDir, ".trainmerge")
	}
	return ExpandPath(home)
}

// GetHistoryDBPath returns $TRAINMERGE_HOME/history.db
func GetHistoryDBPath() string {
	return filepath.Join(GetTrainmergeHome(), "history.db")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
