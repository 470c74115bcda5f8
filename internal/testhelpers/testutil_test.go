package testhelpers

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedInput(t *testing.T) {
	data, err := io.ReadAll(ScriptedInput("2", "Flour", ""))
	require.NoError(t, err)
	assert.Equal(t, "2\nFlour\n\n", string(data))

	data, err = io.ReadAll(ScriptedInput())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"Recipes:", "Soup"}, Lines("Recipes:\nSoup\n"))
	assert.Nil(t, Lines(""))
}
