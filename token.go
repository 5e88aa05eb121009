package skimjson

// Kind classifies a scanned token. Structural kinds reuse their ASCII byte
// values, so a closer maps to its container kind by subtracting 2
// (']'-2 == '[', '}'-2 == '{').
type Kind byte

const (
	// Invalid marks the zero Value; no token carries it.
	Invalid Kind = 0

	// Key is an object member name. Its raw bytes are a quoted string,
	// but it is deliberately a distinct kind from String.
	Key Kind = 1

	// Scalar value kinds.
	String Kind = 11
	Number Kind = 12
	True   Kind = 13
	False  Kind = 14
	Null   Kind = 15

	// Structural kinds.
	Comma     Kind = ','
	Colon     Kind = ':'
	Array     Kind = '['
	ArrayEnd  Kind = ']'
	Object    Kind = '{'
	ObjectEnd Kind = '}'
)

// IsValue reports whether k is a scalar value kind (string, number, or one
// of the three literals). Keys and structural tokens are not values.
func (k Kind) IsValue() bool {
	return k > 10 && k < 20
}

// String returns a short name for the kind, for diagnostics and traces.
func (k Kind) String() string {
	switch k {
	case Key:
		return "key"
	case String:
		return "string"
	case Number:
		return "number"
	case True:
		return "true"
	case False:
		return "false"
	case Null:
		return "null"
	case Comma:
		return "comma"
	case Colon:
		return "colon"
	case Array:
		return "array"
	case ArrayEnd:
		return "array-end"
	case Object:
		return "object"
	case ObjectEnd:
		return "object-end"
	default:
		return "invalid"
	}
}

// Value is a resolved token: a classification plus the span it occupies in
// the scanned buffer. Values are views; they never carry copied bytes, so a
// Value is only meaningful together with the buffer it was resolved from.
type Value struct {
	Kind Kind
	Off  int
	Len  int
}

// Exists reports whether the value was actually resolved. A query that
// matched nothing returns a Value that does not exist.
func (v Value) Exists() bool {
	return v.Kind != Invalid
}

// Raw returns the value's span of buf. String values include both quotes.
// It returns nil when the value does not exist.
func (v Value) Raw(buf []byte) []byte {
	if !v.Exists() {
		return nil
	}
	return buf[v.Off : v.Off+v.Len]
}
