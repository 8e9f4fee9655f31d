package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestStructuredLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewStructuredLogger(&buf, "debug")

	l.LogInfo("fetched %d volumes", 3)
	l.LogWarning("careful")
	l.LogError("failed: %s", "boom")
	l.LogSuccess("written to %s", "s3://b/k")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "fetched 3 volumes", lines[0]["message"])
	assert.Contains(t, lines[0], "time")
	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, "error", lines[2]["level"])
	assert.Equal(t, "failed: boom", lines[2]["message"])
	assert.Equal(t, "success", lines[3]["outcome"])
}

func TestStructuredLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewStructuredLogger(&buf, "ERROR")

	l.LogInfo("hidden")
	l.LogWarning("hidden")
	l.LogError("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
}

func TestStructuredLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewStructuredLogger(&buf, "verbose")

	l.Zerolog().Debug().Msg("hidden")
	l.LogInfo("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
}

func TestTable_Render(t *testing.T) {
	table := NewConsole().CreateTable()
	table.AddColumn("Category")
	table.AddColumn("Count")
	table.AddRow("Unattached volumes", 2)

	out := table.Render()
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "Unattached volumes")
	assert.Contains(t, out, "2")
}
