// Package skimjson is a zero-allocation, single-pass JSON scanner with a
// streaming path query layer.
//
// The scanner walks a raw byte buffer exactly once and reports every token
// as an offset/length view into that buffer; nothing is ever copied or
// materialized into a document tree. A JSONPath-like query layer rides the
// same pass, which makes the package suitable for memory-constrained or
// embedded contexts.
//
// # Scanning
//
// Scan drives a caller-supplied callback with one event per token:
//
//	consumed, err := skimjson.Scan(buf, func(kind skimjson.Kind, buf []byte, off, n int) {
//		fmt.Printf("%s %q\n", kind, buf[off:off+n])
//	})
//
// # Path queries
//
// Find resolves a path expression of the form "$.key[2].name" directly
// against the token stream:
//
//	v, err := skimjson.Find(buf, "$.b[1]")
//	if err == nil && v.Exists() {
//		raw := v.Raw(buf) // the matched span, still in the caller's buffer
//	}
//
// Typed accessors decode on top of Find and fall back to a caller-supplied
// default on any mismatch:
//
//	n := skimjson.GetNumber(buf, "$.temperature", 0)
//	ok := skimjson.GetBool(buf, "$.enabled", false)
//	m, err := skimjson.GetString(buf, "$.name", dst)
//
// # Printing
//
// The printer primitives emit integers and escaped strings through a Sink, a
// capability that accepts byte spans and reports how many bytes it retained.
// FixedBuf is a bounded Sink writing into a fixed-capacity buffer.
//
// # Concurrency
//
// The package holds no process-wide mutable state. Every call is
// self-contained and synchronous, so concurrent calls on disjoint buffers
// are safe without synchronization.
package skimjson
