// Package wide decodes UTF-16 text.
//
// Decoding never fails. A lone surrogate, or a high surrogate not followed
// by a low surrogate, becomes U+FFFD and consumes exactly one code unit, so
// the decoded rune count never exceeds the unit count.
//
// Besides code unit slices, UTF-16 byte streams (DecodeBytes) and strings
// stored in guest linear memory (ReadMemory) are supported.
package wide
