package docs

import (
	"fmt"
	"strings"
)

// kindPrefixes maps rustdoc file name prefixes to item kinds. Anything
// else is treated as a module page.
var kindPrefixes = []struct {
	prefix string
	kind   ItemKind
}{
	{"fn.", KindFunction},
	{"struct.", KindStruct},
	{"enum.", KindEnum},
	{"trait.", KindTrait},
	{"macro.", KindMacro},
	{"type.", KindType},
	{"constant.", KindConstant},
}

// Classify derives the item kind from a rustdoc file name.
// Example: "struct.Client.html" → KindStruct, "index.html" → KindModule.
func Classify(fileName string) ItemKind {
	for _, p := range kindPrefixes {
		if strings.HasPrefix(fileName, p.prefix) {
			return p.kind
		}
	}
	return KindModule
}

// ExtractName returns the text between the first '.' and the trailing
// ".html" of a rustdoc file name.
// Example: "fn.add.html" → "add", "struct.Map.html" → "Map".
func ExtractName(fileName string) (string, error) {
	_, rest, ok := strings.Cut(fileName, ".")
	if !ok {
		return "", fmt.Errorf("%w: %q has no kind prefix", ErrMalformedFileName, fileName)
	}
	name, ok := strings.CutSuffix(rest, ".html")
	if !ok {
		return "", fmt.Errorf("%w: %q does not end with .html", ErrMalformedFileName, fileName)
	}
	return name, nil
}
