package cmd

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init generates a configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ErrWriteConfig.With(slog.String("issue", "no command line context"))
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	confPath += ".yaml"

	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrFileExists)
	}

	data, err := yaml.MarshalContext(ctx, i.settings(ctx), yaml.Indent(defaultConfigIndent))
	if err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", "yaml"))
	}

	if err := os.WriteFile(confPath, data, 0o600); err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath))

	return nil
}

// settings returns the current value of every global flag, keyed by flag
// name. Help and profiling flags are left out.
func (i *Init) settings(ctx context.Context) map[string]any {
	ktx := kongContextFrom(ctx)
	ignore := []string{"help", profile.Tag}

	out := make(map[string]any)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		switch v := ktx.FlagValue(flag).(type) {
		case nil:
		case string:
			if v != "" {
				out[flag.Name] = v
			}
		case []string:
			if len(v) > 0 {
				out[flag.Name] = v
			}
		default:
			out[flag.Name] = v
		}
	}

	return out
}
