package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/carbon-cli/internal/emission"
	"github.com/sells-group/carbon-cli/internal/model"
)

func TestReportCommand_Flags(t *testing.T) {
	for _, name := range []string{"json", "strict"} {
		flag := reportCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "report should have --%s flag", name)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestRunReport_Table(t *testing.T) {
	path := writeProject(t, t.TempDir())

	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, defaultCalculator(), path, false, false))

	output := buf.String()
	assert.Contains(t, output, "Site A")
	assert.Contains(t, output, "CATEGORY")
	assert.Contains(t, output, "185.00")
	assert.Contains(t, output, "17.00")
	assert.Contains(t, output, "202.00")
	assert.Contains(t, output, "Diesel generator")
	assert.Contains(t, output, "Unmatched:")
	assert.Contains(t, output, "Transport[0]")
	assert.Contains(t, output, "Teleporter")
}

func TestRunReport_JSON(t *testing.T) {
	path := writeProject(t, t.TempDir())

	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, defaultCalculator(), path, true, false))

	var out reportOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "Site A", out.Label)
	assert.NotEmpty(t, out.ID)
	assert.InDelta(t, 202, out.Totals.GrandTotal, 1e-9)
	assert.Equal(t, []model.Miss{{Category: model.CategoryTransport, Index: 0, Key: "Teleporter"}}, out.Unmatched)
	require.Len(t, out.Chart, 2)
}

func TestRunReport_Strict(t *testing.T) {
	path := writeProject(t, t.TempDir())

	var buf bytes.Buffer
	err := runReport(&buf, defaultCalculator(), path, false, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, emission.ErrUnmatchedFactor)
	assert.Contains(t, err.Error(), "Teleporter")
	assert.Empty(t, buf.String())
}

func TestRunReport_MissingProject(t *testing.T) {
	var buf bytes.Buffer
	err := runReport(&buf, defaultCalculator(), t.TempDir()+"/absent.yaml", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project: read")
}

func TestFormatReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	formatReport(&buf, "", defaultCalculator().Aggregate(model.Entries{}))

	output := buf.String()
	assert.NotContains(t, output, "Project:")
	assert.NotContains(t, output, "Unmatched")
	for _, cat := range model.Categories() {
		assert.Contains(t, output, string(cat))
	}
	assert.Contains(t, output, "Total")
	assert.Contains(t, output, "0.00")
}
