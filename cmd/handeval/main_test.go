package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, "As Kd", "Qh Jc Ts 2d 3c", "river"))

	out := buf.String()
	assert.Contains(t, out, "straight (4)")
	assert.Contains(t, out, "reference")
	assert.Contains(t, out, "Straight")
}

func TestRunPreflopHasNoReference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, "9c 9d", "9h 2s 5c", "0"))

	out := buf.String()
	assert.Contains(t, out, "one pair (1)")
	assert.NotContains(t, out, "reference")
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, run(&buf, "As", "", "river"))
	assert.Error(t, run(&buf, "As Kx", "", "river"))
	assert.Error(t, run(&buf, "As Kd", "Qh Qh", "river"))
	assert.Error(t, run(&buf, "As Kd", "", "fifth"))
	assert.Empty(t, buf.String())
}
