package ast

import "fmt"

// Kind tags a node with the type system construct it represents.
type Kind uint8

// Definitions.
const (
	ObjectTypeDefinition Kind = iota
	InterfaceTypeDefinition
	EnumTypeDefinition
	UnionTypeDefinition
	ScalarTypeDefinition
	InputObjectTypeDefinition
	DirectiveDefinition

	// Extensions.
	ObjectTypeExtension
	InterfaceTypeExtension
	EnumTypeExtension
	UnionTypeExtension
	ScalarTypeExtension
	InputObjectTypeExtension

	// Values.
	FieldDefinition
	InputValueDefinition
	EnumValueDefinition

	// Instances: usages of a directive and the arguments passed to it.
	Directive
	Argument

	numKinds
)

// Family partitions the catalog.
type Family uint8

const (
	Definitions Family = iota
	Extensions
	Values
	Instances
)

func (f Family) String() string {
	switch f {
	case Definitions:
		return "definitions"
	case Extensions:
		return "extensions"
	case Values:
		return "values"
	case Instances:
		return "instances"
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

type kindInfo struct {
	name    string // identifier used in JSON and on the command line
	display string // label shown in menus and on diagram nodes
	keyword string // SDL keyword, definitions and extensions only
	family  Family
	// extension of a definition, or base of an extension; numKinds when absent
	pair Kind
}

// catalog is keyed by Kind. The length assertion below fails to compile when a
// kind is added without an entry.
var catalog = [...]kindInfo{
	ObjectTypeDefinition:      {"ObjectTypeDefinition", "type", "type", Definitions, ObjectTypeExtension},
	InterfaceTypeDefinition:   {"InterfaceTypeDefinition", "interface", "interface", Definitions, InterfaceTypeExtension},
	EnumTypeDefinition:        {"EnumTypeDefinition", "enum", "enum", Definitions, EnumTypeExtension},
	UnionTypeDefinition:       {"UnionTypeDefinition", "union", "union", Definitions, UnionTypeExtension},
	ScalarTypeDefinition:      {"ScalarTypeDefinition", "scalar", "scalar", Definitions, ScalarTypeExtension},
	InputObjectTypeDefinition: {"InputObjectTypeDefinition", "input", "input", Definitions, InputObjectTypeExtension},
	DirectiveDefinition:       {"DirectiveDefinition", "directive", "directive", Definitions, numKinds},
	ObjectTypeExtension:       {"ObjectTypeExtension", "extend type", "type", Extensions, ObjectTypeDefinition},
	InterfaceTypeExtension:    {"InterfaceTypeExtension", "extend interface", "interface", Extensions, InterfaceTypeDefinition},
	EnumTypeExtension:         {"EnumTypeExtension", "extend enum", "enum", Extensions, EnumTypeDefinition},
	UnionTypeExtension:        {"UnionTypeExtension", "extend union", "union", Extensions, UnionTypeDefinition},
	ScalarTypeExtension:       {"ScalarTypeExtension", "extend scalar", "scalar", Extensions, ScalarTypeDefinition},
	InputObjectTypeExtension:  {"InputObjectTypeExtension", "extend input", "input", Extensions, InputObjectTypeDefinition},
	FieldDefinition:           {"FieldDefinition", "field", "", Values, numKinds},
	InputValueDefinition:      {"InputValueDefinition", "argument", "", Values, numKinds},
	EnumValueDefinition:       {"EnumValueDefinition", "enum value", "", Values, numKinds},
	Directive:                 {"Directive", "directive", "", Instances, numKinds},
	Argument:                  {"Argument", "argument", "", Instances, numKinds},
}

var _ = [1]struct{}{}[len(catalog)-int(numKinds)]

// Kinds returns every kind of the catalog in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k belongs to the catalog.
func (k Kind) Valid() bool { return k < numKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].name
}

// Family returns the family k belongs to.
func (k Kind) Family() Family {
	if !k.Valid() {
		panic(fmt.Sprintf("ast: unknown kind %d", uint8(k)))
	}
	return catalog[k].family
}

// Keyword returns the SDL keyword introducing a definition or extension of kind k.
func (k Kind) Keyword() string {
	if !k.Valid() {
		return ""
	}
	return catalog[k].keyword
}

func (k Kind) IsDefinition() bool { return k.Valid() && catalog[k].family == Definitions }
func (k Kind) IsExtension() bool  { return k.Valid() && catalog[k].family == Extensions }

// ResolveExtension maps a definition kind to its extension counterpart.
// Directive definitions and non-definition kinds have none.
func ResolveExtension(k Kind) (Kind, bool) {
	if !k.IsDefinition() || catalog[k].pair == numKinds {
		return 0, false
	}
	return catalog[k].pair, true
}

// Base maps an extension kind back to the definition kind it extends.
func Base(k Kind) (Kind, bool) {
	if !k.IsExtension() {
		return 0, false
	}
	return catalog[k].pair, true
}

// DisplayName is the human label of k shown in menus and diagrams.
func DisplayName(k Kind) string {
	if !k.Valid() {
		return ""
	}
	return catalog[k].display
}

// IsExtendable reports whether a node of kind k may be the target of an
// "extend" action.
func IsExtendable(k Kind) bool {
	if k.IsExtension() || k == DirectiveDefinition {
		return false
	}
	_, ok := ResolveExtension(k)
	return ok
}

// ParseKind looks a kind up by its identifier, e.g. "ObjectTypeDefinition".
func ParseKind(name string) (Kind, error) {
	for i, info := range catalog {
		if info.name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("ast: unknown kind %q", name)
}

// KindForKeyword returns the definition kind introduced by an SDL keyword.
func KindForKeyword(keyword string) (Kind, bool) {
	for i, info := range catalog {
		if info.family == Definitions && info.keyword == keyword {
			return Kind(i), true
		}
	}
	return 0, false
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("ast: unknown kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
