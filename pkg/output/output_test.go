package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

func TestSuccess(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "Wrote %d actions to %s", 5, "out.funscript")

	assert.Equal(t, "✓ Wrote 5 actions to out.funscript\n", buf.String())
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, "Failed to read %s", "in.funscript")

	assert.Contains(t, buf.String(), "✗")
	assert.Contains(t, buf.String(), "Failed to read in.funscript")
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	Info(&buf, "Information message")

	assert.Equal(t, "Information message\n", buf.String())
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "Deprecated %s", "flag")

	assert.Contains(t, buf.String(), "⚠")
	assert.Contains(t, buf.String(), "Deprecated flag")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]interface{}{"actions": 3, "span_ms": 200}

	require.NoError(t, JSON(&buf, data))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, float64(3), result["actions"])
	assert.Contains(t, buf.String(), "\n  ", "output should be indented")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	data := struct {
		Name  string   `yaml:"name"`
		Steps []string `yaml:"steps"`
	}{Name: "smooth", Steps: []string{"normalize", "scale-sqrt"}}

	require.NoError(t, YAML(&buf, data))

	var result map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "smooth", result["name"])
	assert.Contains(t, buf.String(), "  - normalize")
}

func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable([]string{"METRIC", "VALUE"})
	table.AddRow([]string{"actions", "42"})
	table.AddRow([]string{"span_ms", "123456"})
	table.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "METRIC   VALUE   ", lines[0])
	assert.Equal(t, "-------  ------  ", lines[1])
	assert.Equal(t, "actions  42      ", lines[2])
	assert.Equal(t, "span_ms  123456  ", lines[3])
}

func TestTable_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTable([]string{"A"}).Render(&buf)

	assert.Equal(t, "A  \n-  \n", buf.String())
}

type tabular struct{}

func (v tabular) Table() *Table {
	t := NewTable([]string{"N"})
	t.AddRow([]string{"1"})
	return t
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		value    interface{}
		contains string
		wantErr  bool
	}{
		{name: "table", format: "table", value: tabular{}, contains: "N  \n-  \n1  \n"},
		{name: "default is table", format: "", value: tabular{}, contains: "1  "},
		{name: "json", format: "json", value: map[string]int{"n": 1}, contains: `"n": 1`},
		{name: "yaml", format: "YAML", value: map[string]int{"n": 1}, contains: "n: 1"},
		{name: "not tabular", format: "table", value: 5, wantErr: true},
		{name: "unknown format", format: "xml", value: tabular{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, tt.format, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}
