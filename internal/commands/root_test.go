package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	docs "github.com/urfave/cli-docs/v3"
)

func TestNewRoot_Commands(t *testing.T) {
	root := NewRoot(&Flags{}, "test")

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(t, []string{"ls", "show", "resolve", "select", "config"}, names)
	assert.NotNil(t, root.Action)
}

func TestNewRoot_Markdown(t *testing.T) {
	md, err := docs.ToMarkdown(NewRoot(&Flags{}, "test"))
	require.NoError(t, err)

	assert.Contains(t, md, "atlas")
	assert.Contains(t, md, "resolve")
	assert.Contains(t, md, "--data-dir")
}
