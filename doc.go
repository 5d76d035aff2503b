// Package strkit provides a collection of byte-wise ASCII string-manipulation
// primitives over []byte buffers.
//
// The functions are grouped conceptually into three areas:
//
//   - Classification & comparison – length, character-class predicates
//     (numeric, alphabetic, alphanumeric), equality, palindrome testing,
//     character and substring search, and positional character access.
//
//   - Transformation – case conversion (upper, lower, capitalize, title),
//     trimming, reversal, character replacement, substring extraction and
//     repetition.
//
//   - Composition – splitting by a delimiter byte, joining with a separator
//     byte, and concatenation.
//
// # Buffers and the absent value
//
// Every operation works on a []byte. A nil slice is the distinguished
// "absent" value and is a valid input everywhere: operations either propagate
// it (returning nil) or substitute an empty buffer, as documented per
// function. An empty non-nil slice is the empty string and is never the same
// thing as nil – Equal(nil, []byte{}) is false.
//
// Mutating operations come in pairs. The plain form (Reverse, ToUpper, Trim,
// …) mutates the caller's buffer and returns a view of the same backing
// array; it never grows the buffer. The Copy form (ReverseCopy, ToUpperCopy,
// TrimCopy, …) leaves its input untouched and returns a freshly allocated
// result sharing no storage with the input. Operations that can only produce
// new data (Substring, Repeat, Split, Join, Concat) have no in-place form.
//
// # Usage
//
// Import the package using its module path:
//
//	import "github.com/ridanasif/strkit"
//
// Example – normalising a user-supplied tag:
//
//	tag := strkit.Apply([]byte("  Mixed CASE tag \n"),
//	    strkit.TrimCopy,
//	    strkit.ToLowerCopy,
//	)
//	// tag == []byte("mixed case tag")
//
// Example – tokenising a delimited record:
//
//	fields := strkit.Split([]byte("a,,b"), ',')
//	// fields == [][]byte{[]byte("a"), []byte(""), []byte("b")}
//	line := strkit.Join(fields, ',')
//	// line == []byte("a,,b")
//
// # Error handling
//
// None of the functions returns an error. Out-of-range indices and failed
// searches yield sentinel results (the zero byte, -1); absent inputs yield
// the documented absent or empty result. Nothing panics on nil.
//
// # ASCII only
//
// All operations are byte-wise: case folding and character classes cover the
// ASCII range only, and multi-byte encodings are passed through untouched.
// Callers needing Unicode-aware behaviour should reach for the strings and
// unicode packages instead.
//
// # Concurrency
//
// The package holds no state, so distinct buffers may be processed from
// multiple goroutines concurrently. In-place functions mutate their argument;
// callers must serialise access to any single buffer they mutate.
package strkit
