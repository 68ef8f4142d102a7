package wide

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/julert"
	"github.com/wippyai/julert/errors"
)

// WazeroMemory wraps wazero memory to implement julert.Memory
type WazeroMemory struct {
	mem api.Memory
}

// NewWazeroMemory adapts mem.
func NewWazeroMemory(mem api.Memory) *WazeroMemory {
	return &WazeroMemory{mem: mem}
}

func (m *WazeroMemory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds("read", offset, length)
	}
	return data, nil
}

func (m *WazeroMemory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return outOfBounds("write", offset, uint32(len(data)))
	}
	return nil
}

func (m *WazeroMemory) Size() uint32 {
	if m.mem == nil {
		return 0
	}
	return m.mem.Size()
}

func outOfBounds(op string, offset, length uint32) error {
	return errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
		Value(offset).
		Detail("%s out of bounds: offset=%d, length=%d", op, offset, length).
		Build()
}

var _ julert.Memory = (*WazeroMemory)(nil)
var _ julert.MemorySizer = (*WazeroMemory)(nil)
