package main

import (
	"io"
	"os"

	"github.com/signadot/textblock/lines"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize block output'"`

	Indent int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) blockOpts(w io.Writer) []lines.BlockOption {
	res := []lines.BlockOption{}
	if cfg.Indent > 0 {
		res = append(res, lines.BlockIndent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, lines.BlockColors(lines.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, lines.BlockColors(lines.NewColors()))
	}
	return res
}

type BlockConfig struct {
	*MainConfig

	Header string `cli:"name=header desc='block header text'"`
	Braces string `cli:"name=braces desc='brace selector: ( [ or {'"`

	Block *cli.Command
}

func (cfg *BlockConfig) blockOpts(w io.Writer) []lines.BlockOption {
	res := cfg.MainConfig.blockOpts(w)
	if cfg.Braces != "" {
		res = append(res, lines.Braces(cfg.Braces[0]))
	}
	return res
}

type DedentConfig struct {
	*MainConfig

	Dedent *cli.Command
}
