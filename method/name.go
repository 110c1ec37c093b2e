package method

type nameKind uint8

const (
	literalName nameKind = iota
	dynamicName
)

// Name is the JSON-RPC method name of a Model. It is either a fixed string or
// a function producing the name at call time.
type Name struct {
	kind    nameKind
	literal string
	dynamic func() string
}

// Literal returns a Name fixed to s.
func Literal(s string) Name {
	return Name{kind: literalName, literal: s}
}

// Dynamic returns a Name that calls fn each time it is resolved. A nil fn
// resolves to "".
func Dynamic(fn func() string) Name {
	return Name{kind: dynamicName, dynamic: fn}
}

func (n Name) IsDynamic() bool {
	return n.kind == dynamicName
}

// Resolve returns the method name, invoking the producer of a dynamic name.
func (n Name) Resolve() string {
	if n.kind == dynamicName {
		if n.dynamic == nil {
			return ""
		}
		return n.dynamic()
	}
	return n.literal
}

func (n Name) String() string {
	return n.Resolve()
}
