package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aoc/cli/cmd"
	"github.com/ardnew/aoc/pkg"
)

// CLI is the top-level command-line interface for aoc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version  kong.VersionFlag `help:"Print version and exit" short:"V"`
	DataPath string           `env:"AOC_DATA_PATH" help:"Directories searched for <day>.input after ./${dataDir}, separated by '${pathSep}'" placeholder:"DIRS"`

	Solve cmd.Solve `cmd:"" default:"withargs" help:"Solve a puzzle"`
	List  cmd.List  `cmd:""                    help:"List available puzzles"`
	Check cmd.Check `cmd:""                    help:"Check answers against a YAML answers file"`
}

// Run executes the aoc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so they apply regardless of flag position,
	// including to errors reported while parsing.
	cli.Log.scan(args)

	parser, err := newParser(
		&cli,
		func() context.Context { return ctx },
		configPath(baseConfig),
		kong.Exit(exit),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cli.context(ctx, ktx)

	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}

// newParser builds the kong parser for cli. Commands receive the context
// returned by provide, which is called when a command runs. Configuration
// is read from configFile with ".json" and ".yaml" extensions.
func newParser(
	cli *CLI,
	provide func() context.Context,
	configFile string,
	opts ...kong.Option,
) (*kong.Kong, error) {
	vars := kong.Vars{
		"version": fmt.Sprintf("%s %s (Advent of Code %d)",
			pkg.Name, pkg.Version(), pkg.Year),
		"dataDir": cmd.DefaultDataDir,
		"pathSep": string(os.PathListSeparator),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	return kong.New(cli, append([]kong.Option{
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(provide),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFile+".json"),
		kong.Configuration(loadYAML, configFile+".yaml", configFile+".yml"),
		vars,
	}, opts...)...)
}

// context stores values parsed from the command line in ctx for use by
// commands.
func (c *CLI) context(ctx context.Context, ktx *kong.Context) context.Context {
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithDataPath(ctx, c.DataPath)

	return ctx
}
