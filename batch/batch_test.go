package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/svexpr/document"
	"github.com/ardnew/svexpr/metrics"
	"github.com/ardnew/svexpr/value"
)

const counter = `
file: counter.sv
scope:
  values: {i: 5}
expressions:
  - name: post
    root:
      tag: Expression
      children:
        - tag: Inc_or_dec_expression
          children:
            - tag: Variable_lvalue
              children:
                - tag: Hierarchical_identifier
                  children: [{tag: StringConst, sym: i}]
            - tag: IncDec_PlusPlus
  - name: read
    root:
      tag: Constant_expression
      children:
        - tag: Constant_primary
          children: [{tag: StringConst, sym: i}]
  - name: typo
    root:
      tag: Constant_expression
      children:
        - tag: Constant_primary
          children: [{tag: StringConst, sym: j, line: 7}]
`

func write(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRunner_Run(t *testing.T) {
	t.Cleanup(document.ClearCache)

	dir := t.TempDir()
	good := write(t, dir, "counter.yaml", counter)
	bad := write(t, dir, "bad.yaml", "file: x.sv\nexpressions:\n  - root: {tag: Nope}\n")
	missing := filepath.Join(dir, "missing.yaml")

	m := metrics.New()
	s, err := New(WithJobs(2), WithMetrics(m)).Run(t.Context(), good, bad, missing, good)

	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, err, document.ErrUnknownTag)
	assert.ErrorIs(t, err, document.ErrReadInput)

	require.Len(t, s.Files, 2)
	assert.Equal(t, 6, s.Expressions)
	assert.Equal(t, 2, s.Invalid)
	assert.Equal(t, 2, s.Diagnostics)

	for _, f := range s.Files {
		require.Len(t, f.Results, 3)
		assert.Equal(t, value.Int(5), f.Results[0].Value)
		assert.Equal(t, "(PostInc INT:5)", f.Results[0].IR.String())
		assert.Equal(t, value.Int(6), f.Results[1].Value, "each worker owns its bindings")
		assert.Equal(t, "INT:6", f.Results[1].IR.String())
		assert.Equal(t, "j", f.Results[2].IR.String())
		assert.Equal(t, 7, f.Diagnostics[0].Location.Line)
	}

	assert.NotEqual(t, s.Files[0].Factory, s.Files[1].Factory)

	err = testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP svexpr_documents_total Tree documents processed, by outcome.
# TYPE svexpr_documents_total counter
svexpr_documents_total{outcome="error"} 2
svexpr_documents_total{outcome="ok"} 2
# HELP svexpr_diagnostics_total Diagnostics reported during evaluation.
# TYPE svexpr_diagnostics_total counter
svexpr_diagnostics_total 2
`), "svexpr_documents_total", "svexpr_diagnostics_total")
	assert.NoError(t, err)
}

func TestRunner_Canceled(t *testing.T) {
	t.Cleanup(document.ClearCache)

	path := write(t, t.TempDir(), "counter.yaml", counter)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := New().Run(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
