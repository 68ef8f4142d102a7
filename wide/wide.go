package wide

import "unicode/utf8"

const (
	// ReplacementChar stands in for malformed input.
	ReplacementChar = '\uFFFD'

	surr1    = 0xd800
	surr2    = 0xdc00
	surr3    = 0xe000
	surrSelf = 0x10000
	maxRune  = '\U0010FFFF'
)

// IsSurrogate reports whether r is in the surrogate range.
func IsSurrogate(r rune) bool {
	return surr1 <= r && r < surr3
}

// DecodeRune returns the code point of the surrogate pair r1, r2, or
// ReplacementChar when r1 is not a high surrogate or r2 is not a low one.
func DecodeRune(r1, r2 rune) rune {
	if surr1 <= r1 && r1 < surr2 && surr2 <= r2 && r2 < surr3 {
		return ((r1-surr1)<<10 | (r2 - surr2)) + surrSelf
	}
	return ReplacementChar
}

// EncodeRune returns the surrogate pair for r. Runes that need no pair,
// or that are invalid, yield ReplacementChar twice.
func EncodeRune(r rune) (r1, r2 rune) {
	if r < surrSelf || r > maxRune {
		return ReplacementChar, ReplacementChar
	}
	r -= surrSelf
	return surr1 + (r>>10)&0x3ff, surr2 + r&0x3ff
}

// Decode returns the code points represented by units.
func Decode(units []uint16) []rune {
	if len(units) == 0 {
		return nil
	}
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); {
		r, n := next(units[i:])
		out = append(out, r)
		i += n
	}
	return out
}

// next decodes the first code point of units and returns it with the
// number of units consumed.
func next(units []uint16) (rune, int) {
	r := rune(units[0])
	switch {
	case r < surr1, surr3 <= r:
		return r, 1
	case r < surr2 && len(units) > 1:
		if r2 := rune(units[1]); surr2 <= r2 && r2 < surr3 {
			return DecodeRune(r, r2), 2
		}
	}
	return ReplacementChar, 1
}

// ToUTF8 decodes units and returns them as a UTF-8 string.
func ToUTF8(units []uint16) string {
	buf := make([]byte, 0, len(units))
	for i := 0; i < len(units); {
		r, n := next(units[i:])
		buf = utf8.AppendRune(buf, r)
		i += n
	}
	return string(buf)
}

// Encode returns the UTF-16 encoding of s. Invalid UTF-8 bytes encode as
// ReplacementChar.
func Encode(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		if r >= surrSelf {
			r1, r2 := EncodeRune(r)
			out = append(out, uint16(r1), uint16(r2))
			continue
		}
		out = append(out, uint16(r))
	}
	return out
}
