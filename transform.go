package strkit

// Reverse reverses s in place and returns it. An absent buffer yields nil.
func Reverse(s []byte) []byte {
	if s == nil {
		return nil
	}
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// ReverseCopy returns a reversed copy of s, leaving s untouched. An absent
// buffer yields nil.
func ReverseCopy(s []byte) []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out
}

// Capitalize uppercases the first byte of s in place and returns s. Absent
// and empty buffers are returned unchanged.
func Capitalize(s []byte) []byte {
	if len(s) == 0 {
		return s
	}
	s[0] = toUpperByte(s[0])
	return s
}

// CapitalizeCopy returns a copy of s with its first byte uppercased. An
// absent buffer yields nil; an empty buffer yields a new empty buffer.
func CapitalizeCopy(s []byte) []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, len(s))
	copy(out, s)
	if len(out) > 0 {
		out[0] = toUpperByte(out[0])
	}
	return out
}

// ToUpper uppercases every ASCII letter in s in place and returns s.
// Non-letter bytes pass through unchanged. An absent buffer yields nil.
func ToUpper(s []byte) []byte {
	if s == nil {
		return nil
	}
	for i, c := range s {
		s[i] = toUpperByte(c)
	}
	return s
}

// ToUpperCopy returns an uppercased copy of s, leaving s untouched.
func ToUpperCopy(s []byte) []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, len(s))
	for i, c := range s {
		out[i] = toUpperByte(c)
	}
	return out
}

// ToLower lowercases every ASCII letter in s in place and returns s.
func ToLower(s []byte) []byte {
	if s == nil {
		return nil
	}
	for i, c := range s {
		s[i] = toLowerByte(c)
	}
	return s
}

// ToLowerCopy returns a lowercased copy of s, leaving s untouched.
func ToLowerCopy(s []byte) []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, len(s))
	for i, c := range s {
		out[i] = toLowerByte(c)
	}
	return out
}

// ToTitle title-cases s in place and returns s: the first non-whitespace
// byte of each word is uppercased and every other non-whitespace byte is
// lowercased, so "McDonald" becomes "Mcdonald". Words are separated by ASCII
// whitespace, which passes through unchanged.
func ToTitle(s []byte) []byte {
	if s == nil {
		return nil
	}
	startOfWord := true
	for i, c := range s {
		switch {
		case isSpaceByte(c):
			startOfWord = true
		case startOfWord:
			s[i] = toUpperByte(c)
			startOfWord = false
		default:
			s[i] = toLowerByte(c)
		}
	}
	return s
}

// ToTitleCopy returns a title-cased copy of s, leaving s untouched.
func ToTitleCopy(s []byte) []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, len(s))
	copy(out, s)
	return ToTitle(out)
}

// TrimLeft removes leading ASCII whitespace from s in place, compacting the
// remaining bytes to the front of the buffer, and returns the shortened
// view. An absent buffer yields nil.
func TrimLeft(s []byte) []byte {
	if s == nil {
		return nil
	}
	start := 0
	for start < len(s) && isSpaceByte(s[start]) {
		start++
	}
	if start > 0 {
		copy(s, s[start:])
	}
	return s[:len(s)-start]
}

// TrimLeftCopy returns a copy of s with leading ASCII whitespace removed,
// leaving s untouched. An all-whitespace or empty buffer yields a new empty
// buffer; an absent buffer yields nil.
func TrimLeftCopy(s []byte) []byte {
	if s == nil {
		return nil
	}
	start := 0
	for start < len(s) && isSpaceByte(s[start]) {
		start++
	}
	out := make([]byte, len(s)-start)
	copy(out, s[start:])
	return out
}

// TrimRight removes trailing ASCII whitespace from s by reslicing; no bytes
// move. An absent buffer yields nil.
func TrimRight(s []byte) []byte {
	if s == nil {
		return nil
	}
	end := len(s)
	for end > 0 && isSpaceByte(s[end-1]) {
		end--
	}
	return s[:end]
}

// TrimRightCopy returns a copy of s with trailing ASCII whitespace removed,
// leaving s untouched.
func TrimRightCopy(s []byte) []byte {
	if s == nil {
		return nil
	}
	end := len(s)
	for end > 0 && isSpaceByte(s[end-1]) {
		end--
	}
	out := make([]byte, end)
	copy(out, s[:end])
	return out
}

// Trim removes leading and trailing ASCII whitespace from s in place and
// returns the shortened view. An all-whitespace buffer becomes empty; an
// absent buffer yields nil.
func Trim(s []byte) []byte {
	return TrimLeft(TrimRight(s))
}

// TrimCopy returns a copy of s with leading and trailing ASCII whitespace
// removed, leaving s untouched. An all-whitespace or empty buffer yields a
// new empty buffer; an absent buffer yields nil.
func TrimCopy(s []byte) []byte {
	if s == nil {
		return nil
	}
	start := 0
	for start < len(s) && isSpaceByte(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isSpaceByte(s[end-1]) {
		end--
	}
	out := make([]byte, end-start)
	copy(out, s[start:end])
	return out
}

// Substring returns a newly allocated sub-span of s. A negative start is
// clamped to 0 and a start at or past the end of s yields a new empty
// buffer. A negative length, or one reaching past the end of s, is replaced
// by the remainder of s from start. An absent buffer yields nil.
func Substring(s []byte, start, length int) []byte {
	if s == nil {
		return nil
	}
	if start < 0 {
		start = 0
	}
	if start >= len(s) {
		return []byte{}
	}
	if length < 0 || length > len(s)-start {
		length = len(s) - start
	}
	out := make([]byte, length)
	copy(out, s[start:start+length])
	return out
}

// Repeat returns a new buffer holding times concatenated copies of s. A
// non-positive count or an empty s yields a new empty buffer; an absent
// buffer yields nil.
func Repeat(s []byte, times int) []byte {
	if s == nil {
		return nil
	}
	if times <= 0 || len(s) == 0 {
		return []byte{}
	}
	out := make([]byte, 0, len(s)*times)
	for i := 0; i < times; i++ {
		out = append(out, s...)
	}
	return out
}

// ReplaceByte substitutes every occurrence of old in s with new, in place,
// and returns s. An absent buffer yields nil.
func ReplaceByte(s []byte, old, new byte) []byte {
	if s == nil {
		return nil
	}
	for i, c := range s {
		if c == old {
			s[i] = new
		}
	}
	return s
}

// ReplaceByteCopy returns a copy of s with every occurrence of old replaced
// by new, leaving s untouched.
func ReplaceByteCopy(s []byte, old, new byte) []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, len(s))
	for i, c := range s {
		if c == old {
			out[i] = new
		} else {
			out[i] = c
		}
	}
	return out
}
