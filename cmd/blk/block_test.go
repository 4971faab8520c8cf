package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func testBlockConfig(header string) *BlockConfig {
	return &BlockConfig{
		MainConfig: &MainConfig{Main: cli.NewCommand("blk")},
		Header:     header,
	}
}

func TestBlockReader(t *testing.T) {
	cfg := testBlockConfig("A")
	buf := &bytes.Buffer{}
	if err := blockReader(cfg, buf, strings.NewReader("x: 1\ny: 2\n")); err != nil {
		t.Fatal(err)
	}
	want := "A(\n    x=1,\n    y=2,\n)\n"
	if got := buf.String(); got != want {
		t.Errorf("block mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestBlockReaderSingleEntry(t *testing.T) {
	cfg := testBlockConfig("A")
	buf := &bytes.Buffer{}
	if err := blockReader(cfg, buf, strings.NewReader("x: 1\n")); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "A(x=1)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBlockReaderMultiDoc(t *testing.T) {
	cfg := testBlockConfig("A")
	buf := &bytes.Buffer{}
	if err := blockReader(cfg, buf, strings.NewReader("x: 1\n---\ny: 2")); err != nil {
		t.Fatal(err)
	}
	want := "A(x=1)\n---\nA(y=2)\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBlockReaderNestedMapping(t *testing.T) {
	cfg := testBlockConfig("A")
	buf := &bytes.Buffer{}
	in := "a: 1\nb:\n  c: 2\n  d: 3\n"
	if err := blockReader(cfg, buf, strings.NewReader(in)); err != nil {
		t.Fatal(err)
	}
	want := "A(\n" +
		"    a=1,\n" +
		"    b=(\n" +
		"        c=2,\n" +
		"        d=3,\n" +
		"    ),\n" +
		")\n"
	if got := buf.String(); got != want {
		t.Errorf("block mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestDedentReader(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := dedentReader(buf, strings.NewReader("\n   A(\n      x=1,\n   )\n")); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "A(\n   x=1,\n)\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
