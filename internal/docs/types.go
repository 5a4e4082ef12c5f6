package docs

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ItemKind is the kind label of a documented item. It is derived from the
// file name prefix and never set by callers.
type ItemKind string

const (
	KindFunction ItemKind = "function"
	KindStruct   ItemKind = "struct"
	KindEnum     ItemKind = "enum"
	KindTrait    ItemKind = "trait"
	KindMacro    ItemKind = "macro"
	KindType     ItemKind = "type"
	KindConstant ItemKind = "constant"
	KindModule   ItemKind = "module"
)

// Kinds lists every item kind in declaration order.
var Kinds = []ItemKind{
	KindFunction, KindStruct, KindEnum, KindTrait,
	KindMacro, KindType, KindConstant, KindModule,
}

// Matches reports whether label names this kind, ignoring ASCII case only.
// "STRUCT" matches KindStruct; "ſtruct" does not.
func (k ItemKind) Matches(label string) bool {
	if len(label) != len(k) {
		return false
	}
	for i := 0; i < len(label); i++ {
		if lowerASCII(label[i]) != lowerASCII(k[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// variant is the tag used when an item is serialized, e.g. "Function".
func (k ItemKind) variant() string {
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Documentation is the result of a single crate lookup.
type Documentation struct {
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// Item is one documented entity. The set of implementations is closed:
// *Function, *Struct, *Enum, *Trait, *Macro, *TypeAlias, *Constant, *Module.
type Item interface {
	Kind() ItemKind
	summary() (name string, description *string)
}

// Method is a method block found on a struct or trait page.
type Method struct {
	Name        string  `json:"name" yaml:"name"`
	Signature   string  `json:"signature" yaml:"signature"`
	Description *string `json:"description" yaml:"description"`
}

type Function struct {
	Name        string  `json:"name" yaml:"name"`
	Signature   string  `json:"signature" yaml:"signature"`
	Description *string `json:"description" yaml:"description"`
}

type Struct struct {
	Name        string   `json:"name" yaml:"name"`
	Signature   string   `json:"signature" yaml:"signature"`
	Description *string  `json:"description" yaml:"description"`
	Methods     []Method `json:"methods" yaml:"methods"`
}

type Enum struct {
	Name        string   `json:"name" yaml:"name"`
	Signature   string   `json:"signature" yaml:"signature"`
	Description *string  `json:"description" yaml:"description"`
	Variants    []string `json:"variants" yaml:"variants"`
}

type Trait struct {
	Name        string   `json:"name" yaml:"name"`
	Signature   string   `json:"signature" yaml:"signature"`
	Description *string  `json:"description" yaml:"description"`
	Methods     []Method `json:"methods" yaml:"methods"`
}

type Macro struct {
	Name        string  `json:"name" yaml:"name"`
	Signature   string  `json:"signature" yaml:"signature"`
	Description *string `json:"description" yaml:"description"`
}

// TypeAlias is a `type` item.
type TypeAlias struct {
	Name        string  `json:"name" yaml:"name"`
	Signature   string  `json:"signature" yaml:"signature"`
	Description *string `json:"description" yaml:"description"`
}

type Constant struct {
	Name        string  `json:"name" yaml:"name"`
	Signature   string  `json:"signature" yaml:"signature"`
	Description *string `json:"description" yaml:"description"`
}

// Module carries the names linked from its item table instead of a signature.
type Module struct {
	Name        string   `json:"name" yaml:"name"`
	Description *string  `json:"description" yaml:"description"`
	Items       []string `json:"items" yaml:"items"`
}

func (*Function) Kind() ItemKind  { return KindFunction }
func (*Struct) Kind() ItemKind    { return KindStruct }
func (*Enum) Kind() ItemKind      { return KindEnum }
func (*Trait) Kind() ItemKind     { return KindTrait }
func (*Macro) Kind() ItemKind     { return KindMacro }
func (*TypeAlias) Kind() ItemKind { return KindType }
func (*Constant) Kind() ItemKind  { return KindConstant }
func (*Module) Kind() ItemKind    { return KindModule }

func (i *Function) summary() (string, *string)  { return i.Name, i.Description }
func (i *Struct) summary() (string, *string)    { return i.Name, i.Description }
func (i *Enum) summary() (string, *string)      { return i.Name, i.Description }
func (i *Trait) summary() (string, *string)     { return i.Name, i.Description }
func (i *Macro) summary() (string, *string)     { return i.Name, i.Description }
func (i *TypeAlias) summary() (string, *string) { return i.Name, i.Description }
func (i *Constant) summary() (string, *string)  { return i.Name, i.Description }
func (i *Module) summary() (string, *string)    { return i.Name, i.Description }

// ItemName returns the name shared by every item kind.
func ItemName(it Item) string {
	name, _ := it.summary()
	return name
}

// ItemDescription returns the item's description, or nil when the page had none.
func ItemDescription(it Item) *string {
	_, desc := it.summary()
	return desc
}

// Items serialize externally tagged: {"Function": {...}}.

func (i *Function) MarshalJSON() ([]byte, error) {
	type plain Function
	return tagged(i.Kind(), (*plain)(i))
}

func (i *Struct) MarshalJSON() ([]byte, error) {
	type plain Struct
	return tagged(i.Kind(), (*plain)(i))
}

func (i *Enum) MarshalJSON() ([]byte, error) {
	type plain Enum
	return tagged(i.Kind(), (*plain)(i))
}

func (i *Trait) MarshalJSON() ([]byte, error) {
	type plain Trait
	return tagged(i.Kind(), (*plain)(i))
}

func (i *Macro) MarshalJSON() ([]byte, error) {
	type plain Macro
	return tagged(i.Kind(), (*plain)(i))
}

func (i *TypeAlias) MarshalJSON() ([]byte, error) {
	type plain TypeAlias
	return tagged(i.Kind(), (*plain)(i))
}

func (i *Constant) MarshalJSON() ([]byte, error) {
	type plain Constant
	return tagged(i.Kind(), (*plain)(i))
}

func (i *Module) MarshalJSON() ([]byte, error) {
	type plain Module
	return tagged(i.Kind(), (*plain)(i))
}

// tagged encodes body under its variant tag. Signatures are full of "<",
// ">" and "&", so HTML escaping is off.
func tagged(kind ItemKind, body any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any{kind.variant(): body}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// TaggedValue wraps an item under its variant tag for encoders that do not
// honour json.Marshaler, such as YAML.
func TaggedValue(it Item) map[string]Item {
	return map[string]Item{it.Kind().variant(): it}
}
