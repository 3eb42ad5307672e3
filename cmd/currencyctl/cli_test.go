package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SscSPs/currency_toolkit/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		detectCurrencyField = ""
		detectMaxRows = 1000
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDetectCommand(t *testing.T) {
	path := writeCSV(t, "Date,Amount,Currency\n2024-01-01,₪10,NIS\n2024-01-02,₪20,ILS\n")

	out, err := executeCommand(t, "detect", "--file", path, "--amount-field", "Amount")
	require.NoError(t, err)
	assert.Contains(t, out, "currency: ILS")
	assert.Contains(t, out, "method: label_column")
	assert.Contains(t, out, "currency column: Currency")
	assert.Contains(t, out, "rows scanned: 2")
}

func TestDetectCommand_Unknown(t *testing.T) {
	path := writeCSV(t, "amt\n10\n20\n")

	out, err := executeCommand(t, "detect", "--file", path, "--amount-field", "amt")
	require.NoError(t, err)
	assert.Contains(t, out, "currency: unknown")
	assert.Contains(t, out, "method: none")
}

func TestDetectCommand_MissingColumn(t *testing.T) {
	path := writeCSV(t, "amt\n$10\n")

	_, err := executeCommand(t, "detect", "--file", path, "--amount-field", "value")
	assert.Error(t, err)
}

func TestHashSecretCommand(t *testing.T) {
	out, err := executeCommand(t, "hash-secret", "open-sesame")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("open-sesame", strings.TrimSpace(out)))
}
