package skimjson

import "strconv"

// GetNumber resolves path to a numeric value and decodes it with the
// standard float parser. Any mismatch, miss, or scan failure yields def.
func GetNumber(buf []byte, path string, def float64) float64 {
	v, err := Find(buf, path)
	if err != nil || v.Kind != Number {
		return def
	}
	f, err := strconv.ParseFloat(string(buf[v.Off:v.Off+v.Len]), 64)
	if err != nil {
		return def
	}
	return f
}

// GetInt resolves path to a numeric value truncated to an int. Any
// mismatch, miss, or scan failure yields def.
func GetInt(buf []byte, path string, def int) int {
	v, err := Find(buf, path)
	if err != nil || v.Kind != Number {
		return def
	}
	f, err := strconv.ParseFloat(string(buf[v.Off:v.Off+v.Len]), 64)
	if err != nil {
		return def
	}
	return int(f)
}

// GetBool resolves path to a boolean literal. Any mismatch, miss, or scan
// failure yields def.
func GetBool(buf []byte, path string, def bool) bool {
	v, err := Find(buf, path)
	if err != nil {
		return def
	}
	switch v.Kind {
	case True:
		return true
	case False:
		return false
	default:
		return def
	}
}

// GetString resolves path to a string value and unescapes it into dst,
// quotes excluded, returning the decoded length. It fails with ErrNotFound
// when the path matches nothing, ErrTypeMismatch when it matches a
// non-string, ErrTooSmall when dst cannot hold the decoded form, and
// ErrBadEscape on an unrecognized escape. Scan failures propagate
// unchanged.
func GetString(buf []byte, path string, dst []byte) (int, error) {
	v, err := Find(buf, path)
	if err != nil {
		return 0, err
	}
	if !v.Exists() {
		return 0, newPathError(path, "no value at path", ErrNotFound)
	}
	if v.Kind != String {
		return 0, newPathError(path, "value at path is not a string", ErrTypeMismatch)
	}
	return Unescape(buf[v.Off+1:v.Off+v.Len-1], dst)
}

// Unescape decodes the recognized escape sequences in src into dst and
// returns the decoded length. src must not include the surrounding quotes.
// Decoding never overflows dst: ErrTooSmall reports a destination too small
// for the decoded form, ErrBadEscape an unrecognized escape.
func Unescape(src, dst []byte) (int, error) {
	j := 0
	for i := 0; i < len(src); i++ {
		if j >= len(dst) {
			return 0, ErrTooSmall
		}
		if src[i] == '\\' && i+1 < len(src) {
			c := unescByte(src[i+1])
			if c == 0 {
				return 0, ErrBadEscape
			}
			dst[j] = c
			i++
		} else {
			dst[j] = src[i]
		}
		j++
	}
	return j, nil
}

// Valid reports whether buf holds exactly one well-formed JSON document,
// allowing trailing whitespace.
func Valid(buf []byte) bool {
	n, err := Scan(buf, nil)
	if err != nil {
		return false
	}
	for _, c := range buf[n:] {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}
