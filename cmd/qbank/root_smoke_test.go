package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"qbank", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}

func TestRootRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"list", "random", "topics", "fav", "init"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
}

func TestRootSourceFlagReachesSubcommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "q.json")
	data := `{"data":[{"id":"7","topic":"Logic","subtopic":"Sets","difficulty":"easy","question_text":"Is the empty set finite?","solution_text":"yes","tags":[]}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--source", path, "topics"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Logic\n  Sets (1)\n", out.String())
}
