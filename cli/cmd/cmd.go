package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
)

type (
	contextKey    struct{}
	outputKey     struct{}
	searchPathKey struct{}
)

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// WithOutput returns a context whose commands write their results to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// WithSearchPath returns a context in which document arguments that do not
// name an existing file are looked up in dirs, in order.
func WithSearchPath(ctx context.Context, dirs []string) context.Context {
	return context.WithValue(ctx, searchPathKey{}, dirs)
}

// locate returns the path of the document called name. A name that exists
// as given is returned unchanged; otherwise the first search directory
// holding it wins. Names found nowhere are returned unchanged so that the
// loader reports the failure.
func locate(ctx context.Context, name string) string {
	if exists(name) || filepath.IsAbs(name) {
		return name
	}

	dirs, _ := ctx.Value(searchPathKey{}).([]string)
	for _, dir := range dirs {
		if p := filepath.Join(dir, name); exists(p) {
			return p
		}
	}

	return name
}

func exists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
