package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/textblock/lines"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func block(cfg *BlockConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Block.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return blockReader(cfg, cc.Out, cc.In)
	}
	return blockFiles(cfg, cc.Out, args)
}

func blockFiles(cfg *BlockConfig, w io.Writer, files []string) error {
	for _, file := range files {
		if err := blockFile(cfg, w, file); err != nil {
			return err
		}
	}
	return nil
}

func blockFile(cfg *BlockConfig, w io.Writer, file string) error {
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
	if err := blockReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func blockReader(cfg *BlockConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	opts := cfg.blockOpts(w)
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	for i, doc := range docs {
		var m yaml.MapSlice
		if err := yaml.UnmarshalWithOptions(doc, &m, yaml.UseOrderedMap()); err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		fields, err := blockFields(m, opts)
		if err != nil {
			return fmt.Errorf("error rendering document %d: %w", i, err)
		}
		res, err := lines.MakeBlock(cfg.Header, fields, opts...)
		if err != nil {
			return fmt.Errorf("error formatting document %d: %w", i, err)
		}
		if _, err := io.WriteString(w, res+"\n"); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}

func blockFields(m yaml.MapSlice, opts []lines.BlockOption) ([]lines.Field, error) {
	fields := make([]lines.Field, 0, len(m))
	for _, item := range m {
		v, err := blockValue(item.Value, opts)
		if err != nil {
			return nil, err
		}
		fields = append(fields, lines.Field{
			Key:   scalarText(item.Key),
			Value: v,
		})
	}
	return fields, nil
}

// blockValue renders a decoded value as field text; nested mappings
// become headerless sub-blocks, which Join indents in place.
func blockValue(v any, opts []lines.BlockOption) (string, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		fields, err := blockFields(x, opts)
		if err != nil {
			return "", err
		}
		return lines.MakeBlock("", fields, opts...)
	default:
		return scalarText(v), nil
	}
}

func scalarText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
