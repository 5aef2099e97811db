package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/svexpr/cli/cmd"
	"github.com/ardnew/svexpr/pkg"
)

// CLI is the top-level command-line interface for svexpr.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Path []string `help:"Directories searched for tree documents before those in SVEXPR_PATH." placeholder:"DIR" short:"I" type:"path"`

	Eval    cmd.Eval    `cmd:"" help:"Fold expressions to constant values"`
	Lower   cmd.Lower   `cmd:"" help:"Translate expressions to IR"`
	Batch   cmd.Batch   `cmd:"" help:"Evaluate and lower many documents concurrently"`
	Tags    cmd.Tags    `cmd:"" help:"List syntax tags accepted in tree documents"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
	Version cmd.Version `cmd:"" help:"Print version"`
}

// Run executes the svexpr CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags take effect before kong reports any parse error.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(ctx), configFilePath+".yaml"),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSearchPath(ctx, searchPath(cli.Path))

	defer cli.Log.start(ctx)()

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
