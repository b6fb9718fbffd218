package ast

// TypeRef is the "type" descriptor of a node.
//
// For definitions and extensions Name carries the display label of the kind
// ("type", "extend input", ...). For fields, arguments and input values it is
// the referenced type: a named type when OfType is nil, a list of OfType
// otherwise, either one optionally non-null.
type TypeRef struct {
	Name    string
	NonNull bool
	OfType  *TypeRef
}

// Named returns a reference to the nullable named type name.
func Named(name string) TypeRef {
	return TypeRef{Name: name}
}

// ListOf returns a nullable list of t.
func ListOf(t TypeRef) TypeRef {
	return TypeRef{OfType: &t}
}

// Required returns t as a non-null type.
func Required(t TypeRef) TypeRef {
	t.NonNull = true
	return t
}

// IsList reports whether t is a list type.
func (t TypeRef) IsList() bool { return t.OfType != nil }

// NamedType unwraps lists down to the named type.
func (t TypeRef) NamedType() string {
	for t.OfType != nil {
		t = *t.OfType
	}
	return t.Name
}

func (t TypeRef) String() string {
	var s string
	if t.OfType != nil {
		s = "[" + t.OfType.String() + "]"
	} else {
		s = t.Name
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

func (t TypeRef) clone() TypeRef {
	if t.OfType != nil {
		of := t.OfType.clone()
		t.OfType = &of
	}
	return t
}
