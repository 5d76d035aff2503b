package strkit

// This package is defined in terms of ASCII, not Unicode. The helpers below
// fold and classify single bytes so that no code path depends on the unicode
// package and silently becomes multi-byte aware.

// toUpperByte returns the ASCII uppercase version of c.
func toUpperByte(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// toLowerByte returns the ASCII lowercase version of c.
func toLowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// isSpaceByte reports whether c is an ASCII whitespace byte.
func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isDigitByte(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetterByte(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}
