package iojson

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]int{"index": 1}))
	require.NoError(t, WriteLine(&buf, map[string]int{"index": 2}))

	assert.Equal(t, "{\"index\":1}\n{\"index\":2}\n", buf.String())
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]int{"index": 1}))

	assert.Equal(t, "{\n  \"index\": 1\n}\n", buf.String())
}

func TestWrite_MarshalError(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, math.NaN())
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
