package skimjson

// MaxNestingDepth bounds container nesting. The nesting stack is a fixed
// array on the call stack, so the bound also fixes per-call memory.
const MaxNestingDepth = 20

// Callback receives one event per token, in document order, invoked
// synchronously and never for whitespace. off and n delimit the token's
// bytes in buf; string and key tokens span both quotes, structural tokens
// are one byte long.
type Callback func(kind Kind, buf []byte, off, n int)

// The scanner's expectation states. Transitions are total: any byte a state
// does not accept aborts the scan.
type scanState byte

const (
	expectValue        scanState = iota // a value: top level, after ',' in an array, after ':'
	expectValueOrClose                  // a value or ']', only right after '['
	expectKey                           // a member key, after ',' in an object
	expectKeyOrClose                    // a member key or '}', only right after '{'
	expectColon
	expectCommaOrClose
)

// passString locates the unescaped closing quote in buf, which must begin
// immediately after the opening quote, and returns its offset. A backslash
// followed by a recognized escape letter consumes two bytes as one unit. A
// raw NUL byte is invalid even inside a string. No decoding happens here;
// this only finds the boundary.
func passString(buf []byte) (int, error) {
	for i := 0; i < len(buf); i++ {
		switch {
		case buf[i] == '\\' && i+1 < len(buf) && unescByte(buf[i+1]) != 0:
			i++
		case buf[i] == 0:
			return 0, newSyntaxError("scan", i, "NUL byte inside string", ErrInvalidInput)
		case buf[i] == '"':
			return i, nil
		}
	}
	return 0, newSyntaxError("scan", len(buf), "unterminated string", ErrInvalidInput)
}

// passNumber returns the length of the numeric token at the start of buf,
// or 0 when buf does not start with a number. The boundary follows the
// longest-valid-prefix rule of the host's float parser over the decimal
// grammar: optional sign, digits, optional fraction, optional exponent
// (the exponent is only consumed when it carries digits). Every prefix this
// admits is accepted by strconv.ParseFloat, which remains the decoding
// authority in the accessor layer.
func passNumber(buf []byte) int {
	i := 0
	if i < len(buf) && buf[i] == '-' {
		i++
	}
	intDigits := 0
	for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
		i++
		intDigits++
	}
	fracDigits := 0
	if i < len(buf) && buf[i] == '.' {
		j := i + 1
		for j < len(buf) && buf[j] >= '0' && buf[j] <= '9' {
			j++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(buf) && (buf[i] == 'e' || buf[i] == 'E') {
		j := i + 1
		if j < len(buf) && (buf[j] == '+' || buf[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(buf) && buf[j] >= '0' && buf[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return i
}

// Scan walks buf once, classifying each token and reporting it through cb
// exactly once, with its own offset and length. cb may be nil, which turns
// Scan into a pure validator of a single document prefix.
//
// The scan terminates successfully when the top-level value closes: a bare
// scalar completes a document, and popping the nesting stack to depth zero
// completes a container. The returned count is the number of bytes consumed
// up to and including the terminating token; callers parsing a complete
// standalone document should check it against the buffer length, while
// incremental callers may leave the rest of the buffer unread.
//
// Scan allocates nothing on the success path. Failures are ErrInvalidInput
// for any syntactic violation and ErrTooDeep when nesting exceeds
// MaxNestingDepth, both wrapped in a SyntaxError carrying the byte offset.
func Scan(buf []byte, cb Callback) (int, error) {
	var (
		nesting   [MaxNestingDepth]byte
		depth     int
		expecting = expectValue
	)
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		start := i
		kind := Kind(c)

		switch expecting {
		case expectValue, expectValueOrClose:
			switch {
			case c == '{':
				if depth >= MaxNestingDepth {
					return 0, newSyntaxError("scan", i, "nesting too deep", ErrTooDeep)
				}
				nesting[depth] = c
				depth++
				expecting = expectKeyOrClose
			case c == '[':
				if depth >= MaxNestingDepth {
					return 0, newSyntaxError("scan", i, "nesting too deep", ErrTooDeep)
				}
				nesting[depth] = c
				depth++
				expecting = expectValueOrClose
			case c == ']' && expecting == expectValueOrClose:
				// Close of an empty array; a ']' after a comma is
				// rejected by the state split above.
				done, err := popNesting(nesting[:], &depth, c, i)
				if err != nil {
					return 0, err
				}
				if done {
					if cb != nil {
						cb(kind, buf, start, 1)
					}
					return i + 1, nil
				}
				expecting = expectCommaOrClose
			case c == 't' && i+4 <= len(buf) && string(buf[i:i+4]) == "true":
				i += 3
				kind = True
			case c == 'n' && i+4 <= len(buf) && string(buf[i:i+4]) == "null":
				i += 3
				kind = Null
			case c == 'f' && i+5 <= len(buf) && string(buf[i:i+5]) == "false":
				i += 4
				kind = False
			case c == '-' || (c >= '0' && c <= '9'):
				n := passNumber(buf[i:])
				if n == 0 {
					return 0, newSyntaxError("scan", i, "malformed number", ErrInvalidInput)
				}
				i += n - 1
				kind = Number
			case c == '"':
				n, err := passString(buf[i+1:])
				if err != nil {
					return 0, err
				}
				i += n + 1
				kind = String
			default:
				return 0, newSyntaxError("scan", i, "unexpected byte while expecting a value", ErrInvalidInput)
			}
			if kind.IsValue() {
				// A bare top-level scalar is a complete document.
				if depth == 0 {
					if cb != nil {
						cb(kind, buf, start, i-start+1)
					}
					return i + 1, nil
				}
				expecting = expectCommaOrClose
			}

		case expectKey, expectKeyOrClose:
			switch {
			case c == '"':
				n, err := passString(buf[i+1:])
				if err != nil {
					return 0, err
				}
				i += n + 1
				kind = Key
				expecting = expectColon
			case c == '}' && expecting == expectKeyOrClose:
				// Close of an empty object; a '}' after a comma is
				// rejected by the state split above.
				done, err := popNesting(nesting[:], &depth, c, i)
				if err != nil {
					return 0, err
				}
				if done {
					if cb != nil {
						cb(kind, buf, start, 1)
					}
					return i + 1, nil
				}
				expecting = expectCommaOrClose
			default:
				return 0, newSyntaxError("scan", i, "unexpected byte while expecting an object key", ErrInvalidInput)
			}

		case expectColon:
			if c != ':' {
				return 0, newSyntaxError("scan", i, "unexpected byte while expecting ':'", ErrInvalidInput)
			}
			expecting = expectValue

		case expectCommaOrClose:
			switch {
			case depth <= 0:
				return 0, newSyntaxError("scan", i, "unexpected byte after top-level value", ErrInvalidInput)
			case c == ',':
				if nesting[depth-1] == '{' {
					expecting = expectKey
				} else {
					expecting = expectValue
				}
			case c == ']' || c == '}':
				done, err := popNesting(nesting[:], &depth, c, i)
				if err != nil {
					return 0, err
				}
				if done {
					if cb != nil {
						cb(kind, buf, start, 1)
					}
					return i + 1, nil
				}
			default:
				return 0, newSyntaxError("scan", i, "unexpected byte while expecting ',' or a closing bracket", ErrInvalidInput)
			}
		}

		if cb != nil {
			cb(kind, buf, start, i-start+1)
		}
	}
	return 0, newSyntaxError("scan", len(buf), "incomplete document", ErrInvalidInput)
}

// popNesting handles a closing bracket: the closer must match the innermost
// open container, an object closer only closes an object and an array
// closer only closes an array. done reports that the top-level container
// just closed and the scan is complete. The ASCII distance between an
// opener and its closer is 2.
func popNesting(nesting []byte, depth *int, c byte, off int) (done bool, err error) {
	if *depth <= 0 || c != nesting[*depth-1]+2 {
		return false, newSyntaxError("scan", off, "mismatched closing bracket", ErrInvalidInput)
	}
	*depth--
	return *depth == 0, nil
}
