package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/lazytree/encode"
	"github.com/signadot/lazytree/ir"
	"github.com/signadot/lazytree/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	if cfg.Color || isatty.IsTerminal(os.Stdout.Fd()) {
		return []encode.EncodeOption{
			encode.EncodeColors(encode.NewColors()),
		}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type DepthConfig struct {
	*MainConfig
	Depth *cli.Command
}

type ReconcileConfig struct {
	Apply  bool   `cli:"name=apply desc='apply the transforms and print the results'"`
	Policy string `cli:"name=policy desc='force materialization where this expression holds'"`

	*MainConfig
	Reconcile *cli.Command
}

func lazyMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unknown command %q", cli.ErrUsage, args[0])
	}
	cfg.Main.Usage(cc, nil)
	return nil
}

func getTree(cc *cli.Context, file string) (*ir.Node, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	tree, err := parse.Tree(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return tree, nil
}
