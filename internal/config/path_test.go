package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("BUDGETAI_TEST_DIR", "/tmp/budgetai")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "absolute untouched", path: "/var/lib/app.db", want: "/var/lib/app.db"},
		{name: "tilde only", path: "~", want: home},
		{name: "tilde prefix", path: "~/data/app.db", want: filepath.Join(home, "data", "app.db")},
		{name: "env var", path: "$BUDGETAI_TEST_DIR/app.db", want: "/tmp/budgetai/app.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}

func TestDatabasePath(t *testing.T) {
	assert.Equal(t, "/data/b.db", DatabasePath("/data/b.db"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "budgetai", "budgetai.db"), DatabasePath(""))
}
