package docs

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Structural markers of rustdoc's HTML output.
const (
	declMarker       = "pre.rust.item-decl"
	topDocMarker     = "details.toggle.top-doc div.docblock"
	methodMarker     = "div.impl-items .method"
	variantMarker    = "div.variants .variant"
	headerMarker     = ".code-header"
	docblockMarker   = ".docblock"
	moduleItemMarker = "div.item-table .item-name a"
)

// unknownMethod is used when a method header has no "fn name(" shape.
const unknownMethod = "unknown"

// Extract parses one rustdoc page and returns the item it documents.
// Pages without a declaration block, or whose declaration is empty, yield
// (nil, nil). A file name that does not follow the <kind>.<name>.html
// convention is an error.
func Extract(content, fileName string) (Item, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	decl := doc.Find(declMarker).First()
	if decl.Length() == 0 {
		return nil, nil
	}
	signature := Normalize(innerMarkup(decl))
	if signature == "" {
		return nil, nil
	}

	description := describe(doc.Selection, topDocMarker)

	name, err := ExtractName(fileName)
	if err != nil {
		return nil, err
	}

	switch Classify(fileName) {
	case KindFunction:
		return &Function{Name: name, Signature: signature, Description: description}, nil
	case KindStruct:
		return &Struct{Name: name, Signature: signature, Description: description, Methods: extractMethods(doc)}, nil
	case KindEnum:
		return &Enum{Name: name, Signature: signature, Description: description, Variants: extractVariants(doc)}, nil
	case KindTrait:
		return &Trait{Name: name, Signature: signature, Description: description, Methods: extractMethods(doc)}, nil
	case KindMacro:
		return &Macro{Name: name, Signature: signature, Description: description}, nil
	case KindType:
		return &TypeAlias{Name: name, Signature: signature, Description: description}, nil
	case KindConstant:
		return &Constant{Name: name, Signature: signature, Description: description}, nil
	default:
		return &Module{Name: name, Description: description, Items: extractModuleItems(doc)}, nil
	}
}

// describe returns the normalized text of the first docblock matching
// marker under sel, or nil when there is none or it is blank.
func describe(sel *goquery.Selection, marker string) *string {
	block := sel.Find(marker).First()
	if block.Length() == 0 {
		return nil
	}
	text := Normalize(innerMarkup(block))
	if text == "" {
		return nil
	}
	return &text
}

func extractMethods(doc *goquery.Document) []Method {
	methods := make([]Method, 0)
	doc.Find(methodMarker).Each(func(_ int, sel *goquery.Selection) {
		header := sel.Find(headerMarker).First()
		if header.Length() == 0 {
			return
		}
		signature := Normalize(innerMarkup(header))
		if signature == "" {
			return
		}
		methods = append(methods, Method{
			Name:        methodName(signature),
			Signature:   signature,
			Description: describe(sel, docblockMarker),
		})
	})
	return methods
}

// methodName pulls the identifier between "fn " and the opening parenthesis.
// Example: "pub fn get_value(&self) -> i32" → "get_value".
func methodName(signature string) string {
	_, afterFn, ok := strings.Cut(signature, "fn ")
	if !ok {
		return unknownMethod
	}
	name, _, ok := strings.Cut(afterFn, "(")
	if !ok {
		return unknownMethod
	}
	return strings.TrimSpace(name)
}

func extractVariants(doc *goquery.Document) []string {
	variants := make([]string, 0)
	doc.Find(variantMarker).Each(func(_ int, sel *goquery.Selection) {
		header := sel.Find(headerMarker).First()
		if header.Length() == 0 {
			return
		}
		if v := Normalize(innerMarkup(header)); v != "" {
			variants = append(variants, v)
		}
	})
	return variants
}

func extractModuleItems(doc *goquery.Document) []string {
	items := make([]string, 0)
	doc.Find(moduleItemMarker).Each(func(_ int, sel *goquery.Selection) {
		if name := Normalize(innerMarkup(sel)); name != "" {
			items = append(items, name)
		}
	})
	return items
}

// U+00A0 goes back to &nbsp;, which Normalize leaves alone; written raw it
// would be collapsed as whitespace.
var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "\u00a0", "&nbsp;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;", "\u00a0", "&nbsp;")
)

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// innerMarkup serializes the children of the first node in sel. Text nodes
// escape only & < > and the no-break space; quotes are written as-is.
func innerMarkup(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for c := sel.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		writeMarkup(&b, c)
	}
	return b.String()
}

func writeMarkup(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(textEscaper.Replace(n.Data))
	case html.CommentNode:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case html.ElementNode:
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(attrEscaper.Replace(a.Val))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if voidElements[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeMarkup(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	}
}
