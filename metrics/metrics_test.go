package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/svexpr/diag"
	"github.com/ardnew/svexpr/ir"
	"github.com/ardnew/svexpr/value"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObserveEval(value.Int(3), time.Microsecond)
	m.ObserveEval(value.Value{}, time.Microsecond)
	m.ObserveEval(value.Int(4), time.Microsecond)

	f := ir.NewFactory()
	add := f.Operation(nil, ir.OpAdd)
	f.Append(add, f.Constant(add, "INT:1"), f.RefObj(add, "x"))
	m.ObserveLower(add, time.Millisecond)
	m.ObserveLower(nil, time.Millisecond)

	m.Report(diag.Diagnostic{Kind: diag.UnresolvedName, Name: "x"})
	m.ObserveDocument(nil)

	assert.InDelta(t, 2, testutil.ToFloat64(m.expressions.WithLabelValues(Eval, "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.expressions.WithLabelValues(Eval, "invalid")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.expressions.WithLabelValues(Lower, "empty")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.nodes.WithLabelValues("Operation")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.nodes.WithLabelValues("Constant")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.nodes.WithLabelValues("SysFuncCall")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.diagnostics), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.files.WithLabelValues("ok")), 0)

	assert.Equal(t, 7, testutil.CollectAndCount(m.nodes))
}

func TestMetrics_WriteFile(t *testing.T) {
	m := New()
	m.ObserveEval(value.Int(1), time.Microsecond)

	path := filepath.Join(t.TempDir(), "svexpr.prom")
	require.NoError(t, m.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `svexpr_expressions_total{engine="eval",outcome="ok"} 1`)

	err = testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP svexpr_diagnostics_total Diagnostics reported during evaluation.
# TYPE svexpr_diagnostics_total counter
svexpr_diagnostics_total 0
`), "svexpr_diagnostics_total")
	assert.NoError(t, err)
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveEval(value.Int(1), 0)
		m.ObserveLower(nil, 0)
		m.ObserveDocument(nil)
		diag.Tee(m).Report(diag.Diagnostic{})
	})
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteFile(filepath.Join(t.TempDir(), "x.prom")))
}
