package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "lazy").
		WithSynopsis("lazy [opts] command [opts]").
		WithDescription("lazy is a tool for working with lazy virtual-node trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lazyMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DepthCommand(cfg),
			ReconcileCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view lazy tree fixture files").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DepthCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DepthConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Depth, "depth").
		WithAliases("d").
		WithSynopsis("depth [files]").
		WithDescription("print the virtual-nesting depth of trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return depth(cfg, cc, args)
		})
}

func ReconcileCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReconcileConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Reconcile, "reconcile").
		WithAliases("r").
		WithSynopsis("reconcile [-apply] [-policy <expr>] <file> <file> [files]").
		WithDescription("compute the minimal materialization frontier of trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reconcile(cfg, cc, args)
		})
}
