package skimjson

// childIter collects the immediate children of one container from its token
// stream. The first event it sees is the container's own opener, so
// children live at depth 1.
type childIter struct {
	base     int // container offset in the original buffer
	depth    int
	stopped  bool
	key     Value // pending member key, zero inside arrays
	openOff int   // offset of an open child container, -1 when none
	fn      func(key, elem Value) bool
}

func (it *childIter) emit(elem Value) {
	if !it.fn(it.key, elem) {
		it.stopped = true
	}
	it.key = Value{}
}

func (it *childIter) event(kind Kind, buf []byte, off, n int) {
	if it.stopped {
		return
	}
	switch kind {
	case Object, Array:
		if it.depth == 1 {
			it.openOff = off
		}
		it.depth++
	case ObjectEnd, ArrayEnd:
		it.depth--
		if it.depth == 1 && it.openOff >= 0 {
			it.emit(Value{Kind: kind - 2, Off: it.base + it.openOff, Len: off - it.openOff + 1})
			it.openOff = -1
		}
	case Key:
		if it.depth == 1 {
			it.key = Value{Kind: Key, Off: it.base + off, Len: n}
		}
	default:
		if kind.IsValue() && it.depth == 1 {
			it.emit(Value{Kind: kind, Off: it.base + off, Len: n})
		}
	}
}

// ForEach enumerates the immediate children of the container at path, in
// document order. For an object, fn receives the member's key and value; for
// an array, the key does not exist and elem is the element. Child containers
// are reported as whole spans and not descended into. fn returning false
// stops the enumeration.
//
// All Values reference the original buf. ForEach fails with ErrNotFound when
// the path matches nothing and ErrTypeMismatch when it matches a scalar;
// scan failures propagate unchanged.
func ForEach(buf []byte, path string, fn func(key, elem Value) bool) error {
	v, err := Find(buf, path)
	if err != nil {
		return err
	}
	if !v.Exists() {
		return newPathError(path, "no value at path", ErrNotFound)
	}
	if v.Kind != Object && v.Kind != Array {
		return newPathError(path, "value at path is not a container", ErrTypeMismatch)
	}
	it := &childIter{base: v.Off, openOff: -1, fn: fn}
	_, err = Scan(buf[v.Off:v.Off+v.Len], it.event)
	return err
}
