package strkit

// Split divides s into the tokens between occurrences of delim. Every token
// is independently allocated, so the result stays valid however the caller
// later mutates s. A buffer with no delimiter produces exactly one token
// equal to the whole buffer, and consecutive delimiters produce empty
// tokens, so the result always holds at least one element. An absent buffer
// yields nil.
func Split(s []byte, delim byte) [][]byte {
	if s == nil {
		return nil
	}

	// First pass: count delimiters to size the result exactly.
	n := 1
	for _, c := range s {
		if c == delim {
			n++
		}
	}

	// Second pass: extract tokens.
	tokens := make([][]byte, 0, n)
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == delim {
			tok := make([]byte, i-start)
			copy(tok, s[start:i])
			tokens = append(tokens, tok)
			start = i + 1
		}
	}
	return tokens
}

// Join concatenates the elements of elems with a single sep byte between
// consecutive elements, none before the first or after the last. Zero
// elements yield a new empty buffer; an absent sequence yields nil.
func Join(elems [][]byte, sep byte) []byte {
	if elems == nil {
		return nil
	}
	if len(elems) == 0 {
		return []byte{}
	}

	total := len(elems) - 1
	for _, e := range elems {
		total += len(e)
	}

	out := make([]byte, 0, total)
	for i, e := range elems {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, e...)
	}
	return out
}

// Concat returns a new buffer holding a followed by b. Absent operands are
// treated as empty, so the result is never nil and shares no storage with
// either input.
func Concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
