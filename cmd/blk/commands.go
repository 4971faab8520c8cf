package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "indent",
			Description: "spaces per indent level (default 4)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(count)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "blk").
		WithSynopsis("blk [opts] command [opts]").
		WithDescription("blk renders and dedents indented text blocks.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return blkMain(cfg, cc, args)
		}).
		WithSubs(
			BlockCommand(cfg),
			DedentCommand(cfg))
}

func BlockCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BlockConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("block").
		WithAliases("b").
		WithSynopsis("block [-header H] [-braces c] [files]").
		WithDescription("render mapping documents as header+braces blocks").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return block(cfg, cc, args)
		})
	cfg.Block = cmd
	return cmd
}

func DedentCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DedentConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dedent").
		WithAliases("d").
		WithSynopsis("dedent [files]").
		WithDescription("strip the common leading margin from text").
		WithRun(func(cc *cli.Context, args []string) error {
			return dedent(cfg, cc, args)
		})
	cfg.Dedent = cmd
	return cmd
}
