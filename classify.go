package strkit

// Len returns the number of bytes in s. An absent (nil) buffer has length 0.
func Len(s []byte) int {
	return len(s)
}

// IsNumeric reports whether s is non-empty and consists entirely of ASCII
// digits. Absent and empty buffers are not numeric.
func IsNumeric(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !isDigitByte(c) {
			return false
		}
	}
	return true
}

// IsAlpha reports whether s is non-empty and consists entirely of ASCII
// letters. Absent and empty buffers are not alphabetic.
func IsAlpha(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !isLetterByte(c) {
			return false
		}
	}
	return true
}

// IsAlphaNumeric reports whether s is non-empty and consists entirely of
// ASCII letters and digits.
func IsAlphaNumeric(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !isLetterByte(c) && !isDigitByte(c) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same bytes. Two absent buffers are
// equal; an absent buffer never equals a present one, not even the empty
// string.
func Equal(a, b []byte) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsPalindrome reports whether s reads the same forwards and backwards.
// Empty and single-byte buffers are palindromes; an absent buffer is not.
func IsPalindrome(s []byte) bool {
	if s == nil {
		return false
	}
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// IndexByte returns the index of the first occurrence of c in s, or -1 if c
// is not present. An absent buffer yields -1.
func IndexByte(s []byte, c byte) int {
	for i := range s {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// Index returns the index of the first occurrence of substr in s, or -1 if
// substr is not present. An empty substr matches at index 0. Either operand
// being absent yields -1.
func Index(s, substr []byte) int {
	if s == nil || substr == nil {
		return -1
	}
	if len(substr) == 0 {
		return 0
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		j := 0
		for j < len(substr) && s[i+j] == substr[j] {
			j++
		}
		if j == len(substr) {
			return i
		}
	}
	return -1
}

// Contains reports whether substr occurs within s.
func Contains(s, substr []byte) bool {
	return Index(s, substr) >= 0
}

// First returns the first byte of s, or 0 if s is absent or empty.
func First(s []byte) byte {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// Last returns the last byte of s, or 0 if s is absent or empty.
func Last(s []byte) byte {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// At returns the byte at index i, or 0 if i is negative or past the end of s.
func At(s []byte, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}
