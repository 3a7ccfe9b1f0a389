package memory

// SliceMemory is a Memory over a plain byte slice. Native contracts and tests use it.
type SliceMemory struct {
	data []byte
}

// pages are 64KiB, as in WebAssembly
const PageSize = 65536

func NewSliceMemory(pages int) *SliceMemory {
	return &SliceMemory{data: make([]byte, pages*PageSize)}
}

func (m *SliceMemory) Size() int {
	return len(m.data)
}

// Grow adds pages and returns the previous size in pages.
func (m *SliceMemory) Grow(pages int) int {
	prev := len(m.data) / PageSize
	m.data = append(m.data, make([]byte, pages*PageSize)...)
	return prev
}

func (m *SliceMemory) WithBytes(ptr, length int32, fn func(data []byte) error) error {
	if err := checkBounds(ptr, length, len(m.data)); err != nil {
		return err
	}
	return fn(m.data[ptr : ptr+length : ptr+length])
}

func (m *SliceMemory) WithBytesMut(ptr, length int32, fn func(data []byte) error) error {
	if err := checkBounds(ptr, length, len(m.data)); err != nil {
		return err
	}
	return fn(m.data[ptr : ptr+length : ptr+length])
}
