package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrainmergeHome_FromEnvironment(t *testing.T) {
	t.Setenv("TRAINMERGE_HOME", "/tmp/custom-home")

	assert.Equal(t, "/tmp/custom-home", GetTrainmergeHome())
	assert.Equal(t, "/tmp/custom-home/history.db", GetHistoryDBPath())
}

func TestGetTrainmergeHome_Default(t *testing.T) {
	t.Setenv("TRAINMERGE_HOME", "")
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".trainmerge"), GetTrainmergeHome())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", homeDir},
		{"~/data", filepath.Join(homeDir, "data")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
