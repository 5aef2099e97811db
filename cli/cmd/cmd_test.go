package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/svexpr/document"
	"github.com/ardnew/svexpr/pkg"
)

const top = `
file: top.sv
scope:
  values: {WIDTH: 8, NAME: core}
expressions:
  - name: sum
    root:
      tag: Constant_expression
      line: 2
      children:
        - tag: Constant_expression
          children:
            - tag: Constant_primary
              children:
                - tag: Primary_literal
                  children: [{tag: IntConst, sym: "3"}]
        - tag: BinOp_Plus
        - tag: Constant_expression
          children:
            - tag: Constant_primary
              children: [{tag: StringConst, sym: WIDTH}]
  - name: greeting
    root:
      tag: Constant_expression
      children:
        - tag: Constant_primary
          children: [{tag: StringConst, sym: NAME}]
`

// setup writes the sample document into a new directory and returns the
// directory and a context that captures command output in out.
func setup(t *testing.T, out *bytes.Buffer) (string, context.Context) {
	t.Helper()
	t.Cleanup(document.ClearCache)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.yaml"), []byte(top), 0o600))

	return dir, WithOutput(t.Context(), out)
}

func TestEval_Run(t *testing.T) {
	tests := []struct {
		name   string
		define []string
		want   string
	}{
		{"bindings", nil, "sum = 11\ngreeting = \"core\"\n"},
		{"define overrides", []string{"WIDTH=16"}, "sum = 19\ngreeting = \"core\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			dir, ctx := setup(t, &out)

			e := Eval{
				source: source{Files: []string{filepath.Join(dir, "top.yaml")}, Define: tt.define, MaxDepth: 1000},
				Format: "text",
			}
			require.NoError(t, e.Run(ctx))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestEval_SearchPathAndJSON(t *testing.T) {
	var out bytes.Buffer

	dir, ctx := setup(t, &out)
	ctx = WithSearchPath(ctx, []string{t.TempDir(), dir})

	e := Eval{
		source: source{Files: []string{"top.yaml"}, Name: []string{"sum"}, MaxDepth: 1000},
		Format: "json",
	}
	require.NoError(t, e.Run(ctx))

	var got []record
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "sum", got[0].Name)
	assert.Equal(t, "11", got[0].Value)
	assert.Equal(t, "integer", got[0].Kind)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, filepath.Join(dir, "top.yaml"), got[0].File)
}

func TestEval_Errors(t *testing.T) {
	var out bytes.Buffer

	dir, ctx := setup(t, &out)
	path := filepath.Join(dir, "top.yaml")

	e := Eval{source: source{Files: []string{path}, Name: []string{"nope"}}, Format: "text"}
	err := e.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoad)
	assert.ErrorIs(t, err, document.ErrNoSuchName)

	e = Eval{source: source{Files: []string{path}, Define: []string{"BAD"}}, Format: "text"}
	assert.ErrorIs(t, e.Run(ctx), ErrDefine)

	e = Eval{source: source{Files: []string{"missing.yaml"}}, Format: "text"}
	assert.ErrorIs(t, e.Run(ctx), document.ErrReadInput)
}

func TestLower_Run(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		noSubstitute bool
		want         []string
	}{
		{"compact", "compact", false, []string{"sum = (Add INT:3 INT:8)", "greeting = STRING:core"}},
		{"no substitute", "compact", true, []string{"sum = (Add INT:3 WIDTH)", "greeting = NAME"}},
		{"tree", "tree", false, []string{"sum", "Operation", "Add", "INT:3"}},
		{"dump", "dump", false, []string{`Name: "sum"`, `Op: "Add"`}},
		{"yaml", "yaml", false, []string{"name: sum", "op: Add"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			dir, ctx := setup(t, &out)

			l := Lower{
				source:       source{Files: []string{filepath.Join(dir, "top.yaml")}, MaxDepth: 1000},
				NoSubstitute: tt.noSubstitute,
				Format:       tt.format,
			}
			require.NoError(t, l.Run(ctx))

			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestBatch_Run(t *testing.T) {
	var out bytes.Buffer

	dir, ctx := setup(t, &out)
	prom := filepath.Join(t.TempDir(), "svexpr.prom")

	b := Batch{Files: []string{filepath.Join(dir, "top.yaml")}, Jobs: 2, Metrics: prom, MaxDepth: 1000}
	require.NoError(t, b.Run(ctx))

	assert.Contains(t, out.String(), "2 expressions, 0 invalid, 0 diagnostics")
	assert.Contains(t, out.String(), "total: 1 documents, 2 expressions")
	assert.FileExists(t, prom)

	out.Reset()

	b = Batch{Files: []string{"missing.yaml"}, MaxDepth: 1000}
	err := b.Run(ctx)
	require.ErrorIs(t, err, ErrBatch)
	assert.Contains(t, out.String(), "total: 0 documents")
}

func TestTags_Run(t *testing.T) {
	var out bytes.Buffer

	ctx := WithOutput(t.Context(), &out)

	require.NoError(t, (&Tags{Query: "constexpr"}).Run(ctx))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Contains(t, lines, "Constant_expression")
	assert.NotContains(t, lines, "BinOp_Plus")

	out.Reset()

	require.NoError(t, (&Tags{Case: "snake"}).Run(ctx))
	assert.Contains(t, strings.Split(out.String(), "\n"), "constant_expression")
}

func TestVersion_Run(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Version{}.Run(WithOutput(t.Context(), &out)))
	assert.Equal(t, pkg.Name+" "+pkg.Version()+"\n", out.String())
}

func TestEncode_UnknownFormat(t *testing.T) {
	err := encode(t.Context(), &bytes.Buffer{}, "toml", nil)
	assert.ErrorIs(t, err, ErrFormat)
}
