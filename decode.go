package stackquery

// decodeInto percent-decodes s into dst in one left-to-right pass over raw
// bytes. Rules:
//
//   - '%' followed by two in-range bytes that are both hex digits decodes to
//     the byte hi<<4|lo, appended as a character. Byte values >= 0x80 are
//     reinterpreted as U+0080..U+00FF and stored as their two-byte UTF-8
//     encoding; this is byte-for-byte passthrough, not UTF-8 decoding of the
//     input.
//   - '%' without two following bytes, or with either byte not hex, is a
//     literal '%'. A '%' in the last or second-to-last position is therefore
//     always literal.
//   - '+' becomes a space.
//   - Every other byte passes through as one character.
//
// The pass stops once dst is byte-for-byte full; remaining input is silently
// discarded. A rune that does not fit is dropped whole, and scanning continues
// while free bytes remain, so a narrower later rune may still land.
func decodeInto(dst *StackString, s string) {
	for i := 0; i < len(s) && !dst.full(); {
		switch c := s[i]; {
		case c == '%' && i+2 < len(s):
			hi, okHi := hexVal(s[i+1])
			lo, okLo := hexVal(s[i+2])
			if okHi && okLo {
				dst.appendRune(rune(hi)<<4 | rune(lo))
				i += 3
			} else {
				dst.appendRune('%')
				i++
			}
		case c == '+':
			dst.appendRune(' ')
			i++
		default:
			dst.appendRune(rune(c))
			i++
		}
	}
}

// PercentDecode decodes at most max bytes of s and returns the result as a
// freshly allocated string, safe to retain. It follows the same rules and
// truncation behavior as parsing does; callers on the allocation-free path
// should parse into a QueryParams instead.
func PercentDecode(s string, max int) string {
	out := newStackString(max)
	decodeInto(&out, s)
	return string(out.buf[:out.n])
}

// hexVal returns the value of an ASCII hex digit, case-insensitive.
func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
