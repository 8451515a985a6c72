package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	var out bytes.Buffer

	root := Root()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)

	require.NoError(t, root.Execute())

	return out.String()
}

func TestPositions(t *testing.T) {
	// When: listing positions
	out := execute(t, "", "positions")

	// Then: all 9 positions are listed with their coordinates
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "top-left       0,0", lines[0])
	assert.Equal(t, "bottom-right   2,2", lines[8])
}

func TestPlay(t *testing.T) {
	// Given: no config file
	configPath := filepath.Join(t.TempDir(), "missing.yml")

	// When: a drawn match is played through stdin
	out := execute(t, "tl\ntr\ntc\nml\nmr\nmc\nbl\nbr\nbc\nquit\n",
		"play", "--config", configPath, "--log-level", "error")

	// Then: the draw is reported
	assert.Contains(t, out, "draw!")
}
