package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/lazytree"
)

func depth(cfg *DepthConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Depth.Parse(cc, args)
	if err != nil {
		cfg.Depth.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		tree, err := getTree(cc, file)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Fprintf(cc.Out, "%d\n", lazytree.Depth(tree))
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %d\n", file, lazytree.Depth(tree))
	}
	return nil
}
