// Package render serializes crate documentation for the CLI and the MCP
// endpoint.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jcdickinson/ferrisdoc/internal/docs"
	"github.com/nao1215/markdown"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts json, yaml/yml and markdown/md, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml or markdown)", s)
	}
}

// Write serializes doc to w in the given format.
func Write(w io.Writer, doc *docs.Documentation, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to serialize documentation: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlDocumentation(doc)); err != nil {
			return fmt.Errorf("failed to serialize documentation: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// String is Write into a string, without the trailing newline.
func String(doc *docs.Documentation, format Format) (string, error) {
	var b strings.Builder
	if err := Write(&b, doc, format); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}

type yamlDoc struct {
	Name  string                 `yaml:"name"`
	Items []map[string]docs.Item `yaml:"items"`
}

func yamlDocumentation(doc *docs.Documentation) yamlDoc {
	out := yamlDoc{Name: doc.Name, Items: make([]map[string]docs.Item, len(doc.Items))}
	for i, it := range doc.Items {
		out.Items[i] = docs.TaggedValue(it)
	}
	return out
}

var rustHighlight = markdown.SyntaxHighlight("rust")

func writeMarkdown(w io.Writer, doc *docs.Documentation) error {
	md := markdown.NewMarkdown(w)
	md.H1("Crate " + doc.Name)
	md.PlainText("")

	if len(doc.Items) == 0 {
		md.PlainText("No items found.")
		return md.Build()
	}

	for _, it := range doc.Items {
		md.H2(fmt.Sprintf("%s `%s`", it.Kind(), docs.ItemName(it)))
		md.PlainText("")

		switch v := it.(type) {
		case *docs.Function:
			writeSignature(md, v.Signature)
		case *docs.Macro:
			writeSignature(md, v.Signature)
		case *docs.TypeAlias:
			writeSignature(md, v.Signature)
		case *docs.Constant:
			writeSignature(md, v.Signature)
		case *docs.Struct:
			writeSignature(md, v.Signature)
		case *docs.Trait:
			writeSignature(md, v.Signature)
		case *docs.Enum:
			writeSignature(md, v.Signature)
		}

		if desc := docs.ItemDescription(it); desc != nil {
			md.PlainText(*desc)
			md.PlainText("")
		}

		switch v := it.(type) {
		case *docs.Struct:
			writeMethods(md, v.Methods)
		case *docs.Trait:
			writeMethods(md, v.Methods)
		case *docs.Enum:
			writeList(md, "Variants", v.Variants)
		case *docs.Module:
			writeList(md, "Items", v.Items)
		}
	}
	return md.Build()
}

func writeSignature(md *markdown.Markdown, sig string) {
	md.CodeBlocks(rustHighlight, sig)
	md.PlainText("")
}

func writeMethods(md *markdown.Markdown, methods []docs.Method) {
	if len(methods) == 0 {
		return
	}
	md.H3("Methods")
	md.PlainText("")
	lines := make([]string, len(methods))
	for i, m := range methods {
		lines[i] = "`" + m.Signature + "`"
		if m.Description != nil {
			lines[i] += ": " + *m.Description
		}
	}
	md.BulletList(lines...)
	md.PlainText("")
}

func writeList(md *markdown.Markdown, title string, entries []string) {
	if len(entries) == 0 {
		return
	}
	md.H3(title)
	md.PlainText("")
	md.BulletList(entries...)
	md.PlainText("")
}
