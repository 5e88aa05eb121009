package skimjson

// Sink accepts byte spans and reports how many bytes it retained. Sinks
// never fail; a bounded sink signals exhaustion by accepting fewer bytes
// than offered, so callers detect truncation by comparing reported totals
// against capacity.
type Sink interface {
	Put(p []byte) int
}

// FixedBuf is a Sink writing into a fixed-capacity buffer, silently
// dropping bytes once Buf is full. Len tracks the bytes actually written.
type FixedBuf struct {
	Buf []byte
	Len int
}

// Put copies as much of p as fits and reports the copied count.
func (fb *FixedBuf) Put(p []byte) int {
	n := copy(fb.Buf[fb.Len:], p)
	fb.Len += n
	return n
}

// Static spans handed to sinks, so the printers allocate nothing.
var (
	printDigits    = []byte("0123456789")
	printMinus     = []byte("-")
	printQuote     = []byte(`"`)
	printBackslash = []byte(`\`)
	printLetters   = []byte(escLetters)
)

// PrintBuf forwards p to the sink unmodified and reports the accepted count.
func PrintBuf(s Sink, p []byte) int {
	return s.Put(p)
}

// PrintInt emits the decimal form of n, sign first, and reports the
// accepted count. The digit recursion runs on the magnitude in unsigned
// space, which keeps the minimum value of the signed width exact.
func PrintInt(s Sink, n int64) int {
	u := uint64(n)
	total := 0
	if n < 0 {
		total = s.Put(printMinus)
		u = -u
	}
	return total + printUint(s, u)
}

func printUint(s Sink, u uint64) int {
	total := 0
	if u >= 10 {
		total = printUint(s, u/10)
	}
	d := u % 10
	return total + s.Put(printDigits[d:d+1])
}

// PrintString emits p as a quoted JSON string: recognized control bytes as
// backslash escapes, everything else raw. Reports the accepted count.
func PrintString(s Sink, p []byte) int {
	total := s.Put(printQuote)
	for i := 0; i < len(p); i++ {
		if j := escIndex(p[i]); j >= 0 {
			total += s.Put(printBackslash)
			total += s.Put(printLetters[j : j+1])
		} else {
			total += s.Put(p[i : i+1])
		}
	}
	return total + s.Put(printQuote)
}
