// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapLogger replaces L with a buffer-backed logger for the test.
func swapLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t)
	SetDebug(true)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	assert.Contains(t, out, "hello dbg")
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "err E")
}

func TestSetDebug_Off_HidesDebug(t *testing.T) {
	buf := swapLogger(t)
	SetDebug(false)

	Debugf("quiet")
	Infof("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestSetLevel(t *testing.T) {
	buf := swapLogger(t)

	require.NoError(t, SetLevel(""))
	require.NoError(t, SetLevel("WARN"))
	Infof("skipped")
	Warnf("kept")
	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), "kept")

	assert.Error(t, SetLevel("chatty"))
}

func TestToFile_WritesAndRestores(t *testing.T) {
	_ = swapLogger(t)
	path := filepath.Join(t.TempDir(), "logs", "passkeep.log")

	restore, err := ToFile(path)
	require.NoError(t, err)
	Infof("into the file")
	restore()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "into the file")
}

func TestToFile_EmptyPathDiscards(t *testing.T) {
	buf := swapLogger(t)
	restore, err := ToFile("")
	require.NoError(t, err)
	Infof("nowhere")
	restore()
	assert.NotContains(t, buf.String(), "nowhere")
}
