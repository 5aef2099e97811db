package diag

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/syntax"
)

func unresolved(name string, line int) Diagnostic {
	return Diagnostic{
		Kind:     UnresolvedName,
		Location: syntax.Location{File: "top.sv", Line: line},
		Name:     name,
	}
}

func TestDiagnostic_Error(t *testing.T) {
	d := unresolved("x", 4)
	assert.Equal(t, "top.sv:4: unresolved name x", d.Error())

	d.Hint = "xx"
	assert.Equal(t, "top.sv:4: unresolved name x (did you mean xx?)", d.Error())
}

func TestCollector(t *testing.T) {
	var c Collector

	assert.NoError(t, c.Err())

	var wg sync.WaitGroup

	for i := range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			c.Report(unresolved("x", i+1))
		}()
	}

	wg.Wait()

	assert.Equal(t, 10, c.Len())
	require.Error(t, c.Err())
	assert.Contains(t, c.Err().Error(), "10 errors occurred")
	assert.Len(t, c.Diagnostics(), 10)
}

func TestTee(t *testing.T) {
	var a, b Collector

	var calls int

	sink := Tee(&a, nil, SinkFunc(func(Diagnostic) { calls++ }), &b)
	sink.Report(unresolved("y", 1))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, calls)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer

	sink := LogSink{Logger: log.Make(&buf, log.WithTimeLayout("none"))}
	sink.Report(Diagnostic{
		Kind:     UnresolvedName,
		Location: syntax.Location{File: "top.sv", Line: 2, Column: 5},
		Name:     "DEPTH",
		Hint:     "DEPTH_MAX",
	})

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "diagnostic.name=DEPTH")
	assert.Contains(t, out, "diagnostic.location=top.sv:2:5")
	assert.Contains(t, out, "diagnostic.hint=DEPTH_MAX")

	var zero LogSink
	zero.Report(unresolved("z", 1))
}

func TestSuggest(t *testing.T) {
	names := []string{"WIDTH", "DEPTH", "ADDR_WIDTH"}

	assert.Equal(t, "WIDTH", Suggest("WDTH", names))
	assert.Equal(t, "", Suggest("QQQ", names))
	assert.Equal(t, "", Suggest("", names))
	assert.Equal(t, "", Suggest("x", nil))
}
