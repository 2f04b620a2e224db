package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/lazytree"
	"github.com/signadot/lazytree/encode"
	"github.com/signadot/lazytree/ir"
	"github.com/signadot/lazytree/policy"
	"github.com/signadot/lazytree/structdiff"
)

func reconcile(cfg *ReconcileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Reconcile.Parse(cc, args)
	if err != nil {
		cfg.Reconcile.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: reconcile requires at least 2 args, got %v", cli.ErrUsage, args)
	}
	trees := make([]*ir.Node, len(args))
	for i, file := range args {
		trees[i], err = getTree(cc, file)
		if err != nil {
			return err
		}
	}
	paths, err := lazytree.ReconcilePaths(trees)
	if err != nil {
		var sErr *lazytree.StructureError
		if errors.As(err, &sErr) {
			fmt.Fprintf(os.Stderr, "structure mismatch in %s: %s\n",
				args[sErr.Index], structdiff.Render(sErr.Want, sErr.Got))
		}
		return err
	}
	for _, p := range paths.Paths() {
		fmt.Fprintf(cc.Out, "%s\n", p)
	}
	if !cfg.Apply {
		return nil
	}
	var pruneOpts []lazytree.PruneOption
	if cfg.Policy != "" {
		pol, err := policy.Compile(cfg.Policy)
		if err != nil {
			return err
		}
		pruneOpts = append(pruneOpts, lazytree.ForceAt(pol.ForceAt()))
	}
	transform := lazytree.PruningTransform(paths, pruneOpts...)
	for i, tree := range trees {
		fmt.Fprintf(cc.Out, "--- %s\n", args[i])
		if err := encode.Encode(transform(tree), cc.Out, cfg.encOpts()...); err != nil {
			return err
		}
	}
	return nil
}
