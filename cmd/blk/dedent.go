package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/textblock/lines"

	"github.com/scott-cotton/cli"
)

func dedent(cfg *DedentConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dedent.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dedentReader(cc.Out, cc.In)
	}
	for _, file := range args {
		if err := dedentFile(cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func dedentFile(w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := dedentReader(w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dedentReader(w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	_, err = io.WriteString(w, lines.Dedent(string(in))+"\n")
	return err
}
