package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/lazytree/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		tree, err := getTree(cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(tree, cc.Out, cfg.encOpts()...); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}
