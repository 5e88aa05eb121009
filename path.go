package skimjson

import "strings"

// matchCursor is the per-query working set of the streaming path matcher.
// It consumes the token stream of a single scan and resolves the first
// location the path names. Created fresh per query, never shared.
type matchCursor struct {
	path         string
	pos          int   // read position in path
	depth        int   // current traversal depth
	targetDepth  int   // depth at which the rest of the path must match
	index        int   // current element index in the container being matched
	targetIndex  int   // requested element index from the current selector
	containerOff int   // offset of the candidate container, -1 when none
	result       Value // zero until resolved; first match wins
}

func (m *matchCursor) pathDone() bool {
	return m.pos >= len(m.path)
}

// parseIndex reads the nonnegative integer of the "[N]" selector at pos.
func (m *matchCursor) parseIndex() int {
	n := 0
	for i := m.pos + 1; i < len(m.path) && m.path[i] >= '0' && m.path[i] <= '9'; i++ {
		n = n*10 + int(m.path[i]-'0')
	}
	return n
}

// skipSelector advances pos past the closing ']' of the current selector.
func (m *matchCursor) skipSelector() {
	for m.pos < len(m.path) && m.path[m.pos] != ']' {
		m.pos++
	}
	if m.pos < len(m.path) {
		m.pos++
	}
}

// event advances the cursor on one token. The matcher rides the scan: it
// never re-invokes the scanner, and once resolved it ignores every further
// event.
func (m *matchCursor) event(kind Kind, buf []byte, off, n int) {
	if m.result.Exists() {
		return
	}
	switch kind {
	case Object:
		if m.pathDone() && m.depth == m.targetDepth {
			m.containerOff = off
		}
		m.depth++

	case Array:
		if m.depth == m.targetDepth && m.pos < len(m.path) && m.path[m.pos] == '[' {
			m.index = 0
			m.targetIndex = m.parseIndex()
			if m.targetIndex == 0 {
				// Optimistic fast path: element 0 is selected the
				// moment its container opens.
				m.skipSelector()
				m.targetDepth++
			}
		}
		if m.pathDone() && m.depth == m.targetDepth {
			m.containerOff = off
		}
		m.depth++

	case Comma:
		if m.depth == m.targetDepth+1 {
			m.index++
			if m.index == m.targetIndex {
				m.skipSelector()
				m.targetDepth++
			}
		}

	case Key:
		if m.depth != m.targetDepth+1 || m.pos >= len(m.path) || m.path[m.pos] != '.' {
			return
		}
		seg := m.path[m.pos+1:]
		if i := strings.IndexAny(seg, ".["); i >= 0 {
			seg = seg[:i]
		}
		// The key's raw bytes, quotes excluded, must equal the whole
		// segment identifier.
		if string(buf[off+1:off+n-1]) == seg {
			m.pos += 1 + len(seg)
			m.targetDepth++
		}

	case ObjectEnd, ArrayEnd:
		m.depth--
		if m.pathDone() && m.depth == m.targetDepth && m.containerOff >= 0 {
			m.result = Value{Kind: kind - 2, Off: m.containerOff, Len: off - m.containerOff + 1}
		}

	default:
		if kind.IsValue() && m.depth == m.targetDepth && m.pathDone() {
			m.result = Value{Kind: kind, Off: off, Len: n}
		}
	}
}

// Find resolves a path expression against buf in a single pass and returns
// the first matching value as a view into buf.
//
// The grammar is '$' for the root followed by any sequence of ".name" member
// selectors and "[N]" zero-based index selectors, e.g. "$.a.b[2].c". No
// wildcard, slice, or recursive-descent operators exist.
//
// A query with no matching location is not an error: the returned Value
// reports Exists() == false and err is nil. Scan failures propagate
// unchanged, and a path not starting with '$' is rejected with
// ErrInvalidPath.
func Find(buf []byte, path string) (Value, error) {
	if len(path) == 0 || path[0] != '$' {
		return Value{}, newPathError(path, "path must start with '$'", ErrInvalidPath)
	}
	m := &matchCursor{path: path, pos: 1, containerOff: -1}
	if _, err := Scan(buf, m.event); err != nil {
		return Value{}, err
	}
	return m.result, nil
}

// Lookup is the strict variant of Find: a query with no matching location
// returns ErrNotFound instead of a missing Value.
func Lookup(buf []byte, path string) (Value, error) {
	v, err := Find(buf, path)
	if err != nil {
		return Value{}, err
	}
	if !v.Exists() {
		return Value{}, newPathError(path, "no value at path", ErrNotFound)
	}
	return v, nil
}
