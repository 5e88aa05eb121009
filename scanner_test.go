package skimjson

import (
	"errors"
	"strings"
	"testing"
)

// TestScanTokenSpansReproduceInput verifies that concatenating every token
// span plus the whitespace between them rebuilds the consumed part of the
// buffer exactly.
func TestScanTokenSpansReproduceInput(t *testing.T) {
	docs := []string{
		`{"a":1,"b":[10,20,30],"c":{"d":"x"}}`,
		` [ 1 , 2.5 , true , null , "s" ] `,
		"{\n\t\"k\":\r\n\"v\"\n}",
		`"top"`,
		`-12.5e3`,
		`{}`,
		`[]`,
		`[[[]]]`,
		`[{"a":[]},{"b":{}}]`,
	}
	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			buf := []byte(doc)
			var rebuilt []byte
			last := 0
			consumed, err := Scan(buf, func(_ Kind, b []byte, off, n int) {
				if off < last {
					t.Fatalf("token at offset %d overlaps previous token ending at %d", off, last)
				}
				for _, c := range b[last:off] {
					if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
						t.Fatalf("non-whitespace byte %q between tokens", c)
					}
				}
				rebuilt = append(rebuilt, b[last:off+n]...)
				last = off + n
			})
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if consumed != last {
				t.Errorf("Scan() consumed %d; want %d", consumed, last)
			}
			if string(rebuilt) != doc[:consumed] {
				t.Errorf("rebuilt %q; want %q", rebuilt, doc[:consumed])
			}
		})
	}
}

func TestScanTokenSequence(t *testing.T) {
	type tok struct {
		kind Kind
		raw  string
	}
	tests := []struct {
		name string
		doc  string
		want []tok
	}{
		{
			name: "object member",
			doc:  `{"k":"v"}`,
			want: []tok{
				{Object, `{`}, {Key, `"k"`}, {Colon, `:`}, {String, `"v"`}, {ObjectEnd, `}`},
			},
		},
		{
			name: "array of scalars",
			doc:  `[true,false,null,1,"s"]`,
			want: []tok{
				{Array, `[`}, {True, `true`}, {Comma, `,`}, {False, `false`}, {Comma, `,`},
				{Null, `null`}, {Comma, `,`}, {Number, `1`}, {Comma, `,`}, {String, `"s"`},
				{ArrayEnd, `]`},
			},
		},
		{
			name: "key kind is distinct from string kind",
			doc:  `{"s":"s"}`,
			want: []tok{
				{Object, `{`}, {Key, `"s"`}, {Colon, `:`}, {String, `"s"`}, {ObjectEnd, `}`},
			},
		},
		{
			name: "bare scalar",
			doc:  `42`,
			want: []tok{{Number, `42`}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []tok
			_, err := Scan([]byte(tt.doc), func(kind Kind, b []byte, off, n int) {
				got = append(got, tok{kind, string(b[off : off+n])})
			})
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Scan() emitted %d tokens %v; want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %v %q; want %v %q", i, got[i].kind, got[i].raw, tt.want[i].kind, tt.want[i].raw)
				}
			}
		})
	}
}

func TestScanInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty input", ``},
		{"trailing comma", `[1,2,]`},
		{"trailing comma in object", `{"a":1,}`},
		{"trailing comma in nested array", `[[1,],2]`},
		{"missing value", `{"a":}`},
		{"object closed by array bracket", `{"a":1]`},
		{"array closed by object bracket", `[1,2}`},
		{"unclosed object", `{`},
		{"unclosed array", `[1,2`},
		{"lone closer", `]`},
		{"unterminated string", `"abc`},
		{"NUL inside string", "\"a\x00b\""},
		{"truncated literal", `tru`},
		{"misspelled literal", `nulL`},
		{"garbage after literal in array", `[truex]`},
		{"missing colon", `{"a" 1}`},
		{"non-string key", `{1:2}`},
		{"bare minus", `-`},
		{"double minus", `[--1]`},
		{"comma before value", `[,1]`},
		{"colon in array", `[1:2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan([]byte(tt.doc), nil)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Scan(%q) error = %v; want ErrInvalidInput", tt.doc, err)
			}
			if errors.Is(err, ErrTooDeep) {
				t.Errorf("Scan(%q) error classified as too-deep", tt.doc)
			}
		})
	}
}

// TestScanNoPhantomTokens verifies the no-partial-success contract: a
// trailing comma must not emit a token for a phantom element.
func TestScanNoPhantomTokens(t *testing.T) {
	var values int
	_, err := Scan([]byte(`[1,2,]`), func(kind Kind, _ []byte, _, _ int) {
		if kind.IsValue() {
			values++
		}
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Scan() error = %v; want ErrInvalidInput", err)
	}
	if values != 2 {
		t.Errorf("Scan() emitted %d value tokens; want 2", values)
	}
}

func TestScanTooDeep(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		tooDeep bool
	}{
		{"arrays at the bound", strings.Repeat("[", MaxNestingDepth) + strings.Repeat("]", MaxNestingDepth), false},
		{"arrays beyond the bound", strings.Repeat("[", MaxNestingDepth+1) + strings.Repeat("]", MaxNestingDepth+1), true},
		{"objects beyond the bound", strings.Repeat(`{"a":`, MaxNestingDepth+1) + "1" + strings.Repeat("}", MaxNestingDepth+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumed, err := Scan([]byte(tt.doc), nil)
			if tt.tooDeep {
				if !errors.Is(err, ErrTooDeep) {
					t.Fatalf("Scan() error = %v; want ErrTooDeep", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if consumed != len(tt.doc) {
				t.Errorf("Scan() consumed %d; want %d", consumed, len(tt.doc))
			}
		})
	}
}

// TestScanStopsAtDocumentEnd verifies that the scan terminates at the
// top-level value and reports the consumed byte count, leaving trailing
// bytes unread.
func TestScanStopsAtDocumentEnd(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		consumed int
	}{
		{"scalar with trailing garbage", `123xyz`, 3},
		{"number stops at second dot", `1.2.3`, 3},
		{"string with trailing data", `"s"x`, 3},
		{"literal with trailing data", `true false`, 4},
		{"object with trailing data", `{"a":1} extra`, 7},
		{"array with extra closers", `[1,2,3]]]]`, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumed, err := Scan([]byte(tt.doc), nil)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if consumed != tt.consumed {
				t.Errorf("Scan() consumed %d; want %d", consumed, tt.consumed)
			}
		})
	}
}

func TestPassNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 1},
		{"42", 2},
		{"-7", 2},
		{"1.5", 3},
		{"-0.25", 5},
		{"1.", 2},
		{"-.5", 3},
		{"1e3", 3},
		{"1E-3", 4},
		{"1.25e+10", 8},
		{"1e", 1},   // exponent without digits is not consumed
		{"1e+", 1},  // ditto
		{"1.2.3", 3},
		{"-", 0},
		{"-x", 0},
		{".", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := passNumber([]byte(tt.in)); got != tt.want {
				t.Errorf("passNumber(%q) = %d; want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPassString(t *testing.T) {
	tests := []struct {
		name    string
		in      string // positioned just after the opening quote
		want    int
		wantErr bool
	}{
		{"plain", `abc"`, 3, false},
		{"empty", `"`, 0, false},
		{"escaped quote", `a\"b"`, 4, false},
		{"escaped backslash then quote", `a\\"`, 3, false},
		{"unknown escape passes through", `a\qb"`, 4, false},
		{"unterminated", `abc`, 0, true},
		{"ends on escape unit", `abc\"`, 0, true},
		{"NUL byte", "a\x00b\"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := passString([]byte(tt.in))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("passString(%q) error = %v; want ErrInvalidInput", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("passString(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("passString(%q) = %d; want %d", tt.in, got, tt.want)
			}
		})
	}
}

// TestScanAllocationFree pins the zero-allocation contract of the scanner
// itself.
func TestScanAllocationFree(t *testing.T) {
	buf := []byte(`{"a":1,"b":[10,20,30],"c":{"d":"x"}}`)
	allocs := testing.AllocsPerRun(100, func() {
		if _, err := Scan(buf, nil); err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
	})
	if allocs != 0 {
		t.Errorf("Scan() allocated %.1f times per run; want 0", allocs)
	}
}
