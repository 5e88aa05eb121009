package skimjson

import "strings"

// The two sides of the escape table, index-aligned: escLiterals[i] escapes
// to '\' + escLetters[i].
const (
	escLiterals = "\b\f\n\r\t\\\"/"
	escLetters  = "bfnrt\\\"/"
)

// escIndex returns the table position of literal byte c, or -1 when c needs
// no escape.
func escIndex(c byte) int {
	return strings.IndexByte(escLiterals, c)
}

// escByte returns the escaped single-letter form of literal byte c, or 0
// when c needs no escape.
func escByte(c byte) byte {
	if i := escIndex(c); i >= 0 {
		return escLetters[i]
	}
	return 0
}

// unescByte returns the literal byte named by escape letter c, or 0 when c
// is not a recognized escape.
func unescByte(c byte) byte {
	if i := strings.IndexByte(escLetters, c); i >= 0 {
		return escLiterals[i]
	}
	return 0
}
