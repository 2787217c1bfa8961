package main

import (
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/interlinear/internal/reference"
)

// ResolveCmd parses a citation.
type ResolveCmd struct {
	Citation string `arg:"" help:"Citation, e.g. \"jn 3.16-18\""`
	Chapter  int    `help:"Chapter assumed when the citation names only a book" default:"1"`
}

func (c *ResolveCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *ResolveCmd) run(w io.Writer) error {
	p := reference.Resolve(c.Citation, c.Chapter)
	if !p.IsValid() {
		return fmt.Errorf("unrecognised citation %q", c.Citation)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", p.Display, reference.EncodeForURL(p.Display))
	return err
}
