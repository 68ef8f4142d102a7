package wide

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/julert/errors"
)

// ByteOrder selects the default byte order of a UTF-16 byte stream. A
// leading byte order mark overrides it.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big-endian"
	}
	return "little-endian"
}

// DecodeBytes converts a UTF-16 byte stream to UTF-8. A byte order mark is
// honoured and stripped. Malformed units become ReplacementChar, as does a
// trailing odd byte.
func DecodeBytes(b []byte, order ByteOrder) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	endian := unicode.LittleEndian
	if order == BigEndian {
		endian = unicode.BigEndian
	}
	out, err := unicode.UTF16(endian, unicode.UseBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Wrap(errors.PhaseDecode, errors.KindInvalidUTF16, err, "decode "+order.String()+" stream")
	}
	return string(out), nil
}

// EncodeBytes converts s to a UTF-16 byte stream in the given order,
// without a byte order mark.
func EncodeBytes(s string, order ByteOrder) ([]byte, error) {
	endian := unicode.LittleEndian
	if order == BigEndian {
		endian = unicode.BigEndian
	}
	out, err := unicode.UTF16(endian, unicode.IgnoreBOM).NewEncoder().String(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidUTF16, err, "encode "+order.String()+" stream")
	}
	return []byte(out), nil
}
