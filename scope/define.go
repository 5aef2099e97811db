package scope

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/pkg/errors"

	"github.com/ardnew/svexpr/value"
)

// ParseDefine splits a definition of the form NAME=EXPR.
func ParseDefine(def string) (name, src string, err error) {
	name, src, ok := strings.Cut(def, "=")
	name, src = strings.TrimSpace(name), strings.TrimSpace(src)

	switch {
	case !ok:
		return "", "", errors.Errorf("define %q: missing '='", def)
	case name == "":
		return "", "", errors.Errorf("define %q: empty name", def)
	case src == "":
		return "", "", errors.Errorf("define %q: empty expression", def)
	}

	return name, src, nil
}

// Define evaluates the expr-lang expression src against the bindings visible
// from s and binds the result to name in s.
//
// Integer and real bindings are visible to src as int64, uint64, and
// float64, and string bindings as string. The result must be a number, a
// bool, or a string.
func (s *Scope) Define(name, src string) (value.Value, error) {
	env := make(map[string]any)
	for n, v := range s.Values() {
		env[n] = v.Native()
	}

	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return value.Value{}, errors.Wrapf(err, "compile define %s", name)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return value.Value{}, errors.Wrapf(err, "run define %s", name)
	}

	v, ok := value.FromAny(out)
	if !ok {
		return value.Value{}, errors.Errorf("define %s: unsupported result type %T", name, out)
	}

	s.Set(name, v)

	return v, nil
}

// Apply parses and evaluates each definition in order, so later
// definitions may refer to earlier ones.
func (s *Scope) Apply(defs ...string) error {
	for _, def := range defs {
		name, src, err := ParseDefine(def)
		if err != nil {
			return err
		}

		if _, err := s.Define(name, src); err != nil {
			return err
		}
	}

	return nil
}
