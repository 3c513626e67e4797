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

	t.Setenv("FINTRACK_TEST_DIR", "/srv/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "absolute untouched", in: "/var/lib/fintrack.db", want: "/var/lib/fintrack.db"},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/fintrack/fintrack.db", want: filepath.Join(home, "fintrack", "fintrack.db")},
		{name: "env var", in: "$FINTRACK_TEST_DIR/fintrack.db", want: "/srv/data/fintrack.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
