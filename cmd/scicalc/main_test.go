package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerFileOnly(t *testing.T) {
	var file bytes.Buffer

	log := setupLogger(envLocal, nil, &file)
	log.Debug("not persisted")
	log.Info("adding 2 + 3")
	log.Error("attempted division by zero")

	out := file.String()
	assert.NotContains(t, out, "not persisted")
	assert.Contains(t, out, `level=INFO msg="adding 2 + 3"`)
	assert.Contains(t, out, `level=ERROR msg="attempted division by zero"`)
}

func TestSetupLoggerProdConsole(t *testing.T) {
	var console, file bytes.Buffer

	log := setupLogger(envProd, &console, &file)
	log.Debug("hidden")
	log.Info("calculating square root of 16")

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "calculating square root of 16", entry["msg"])

	assert.Contains(t, file.String(), "calculating square root of 16")
}

func TestSetupLoggerDevConsoleIncludesDebug(t *testing.T) {
	var console, file bytes.Buffer

	log := setupLogger(envDev, &console, &file)
	log.Debug("calculator initialized")

	assert.Contains(t, console.String(), `"msg":"calculator initialized"`)
	assert.Empty(t, file.String())
}

func TestOpenLogFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calculator.log")

	for _, line := range []string{"first\n", "second\n"} {
		f, err := openLogFile(path)
		require.NoError(t, err)
		_, err = f.WriteString(line)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}
