// Command charsgen writes the typed accessors of package characteristics
// from the key table in package schema.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"text/template"

	"github.com/trackforge/kartchar/internal/characteristics/schema"
)

var accessors = template.Must(template.New("accessors").Parse(`// Code generated by charsgen. DO NOT EDIT.

package characteristics

import "github.com/trackforge/kartchar/internal/characteristics/schema"
{{range .}}
// {{.GoName}} returns the {{.Doc}}.
func (c *Characteristics) {{.GoName}}() float64 { return c.values[schema.{{.GoName}}] }

// Set{{.GoName}} sets {{.}}.
func (b *Builder) Set{{.GoName}}(v float64) error { return b.Set(schema.{{.GoName}}, v) }
{{end}}`))

func generate(w io.Writer) error {
	var buf bytes.Buffer
	if err := accessors.Execute(&buf, schema.All()); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func main() {
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	var buf bytes.Buffer
	if err := generate(&buf); err != nil {
		fmt.Fprintln(os.Stderr, "charsgen:", err)
		os.Exit(1)
	}
	if *out == "" {
		_, _ = os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "charsgen:", err)
		os.Exit(1)
	}
}
