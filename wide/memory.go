package wide

import (
	"encoding/binary"

	"github.com/wippyai/julert"
	"github.com/wippyai/julert/errors"
)

// MaxUnits bounds the length of a string read from guest memory.
const MaxUnits = 1 << 27

// ReadMemory reads units UTF-16LE code units at offset and returns them as
// UTF-8.
func ReadMemory(mem julert.Memory, offset, units uint32) (string, error) {
	if units == 0 {
		return "", nil
	}
	if units > MaxUnits {
		return "", errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Value(units).
			Detail("string of %d units exceeds maximum %d", units, MaxUnits).
			Build()
	}
	size := units * 2
	if offset > ^uint32(0)-size {
		return "", errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Value(offset).
			Detail("string at %d with %d units overflows address space", offset, units).
			Build()
	}

	data, err := mem.Read(offset, size)
	if err != nil {
		return "", errors.Wrap(errors.PhaseDecode, errors.KindOutOfBounds, err, "read utf-16 string")
	}

	buf := make([]uint16, units)
	for i := range buf {
		buf[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return ToUTF8(buf), nil
}

// WriteMemory encodes s as UTF-16LE into memory obtained from alloc and
// returns its address and length in code units.
func WriteMemory(mem julert.Memory, alloc julert.Allocator, s string) (ptr, units uint32, err error) {
	if s == "" {
		return 0, 0, nil
	}
	encoded := Encode(s)
	if len(encoded) > MaxUnits {
		return 0, 0, errors.InvalidInput(errors.PhaseDecode, "string too long for guest memory")
	}
	units = uint32(len(encoded))

	ptr, err = alloc.Alloc(units*2, 2)
	if err != nil {
		return 0, 0, errors.Wrap(errors.PhaseDecode, errors.KindAllocation, err, "allocate utf-16 string")
	}

	data := make([]byte, units*2)
	for i, u := range encoded {
		binary.LittleEndian.PutUint16(data[i*2:], u)
	}
	if err := mem.Write(ptr, data); err != nil {
		alloc.Free(ptr, units*2, 2)
		return 0, 0, errors.Wrap(errors.PhaseDecode, errors.KindOutOfBounds, err, "write utf-16 string")
	}
	return ptr, units, nil
}
