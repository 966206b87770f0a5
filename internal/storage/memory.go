package storage

// Memory is a map-backed key-value store. It never fails unless PutErr is
// set, which makes it usable as a fake for write-failure paths.
type Memory struct {
	data   map[string][]byte
	Writes int
	PutErr error
}

func NewMemory() *Memory {
	return &Memory{data: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *Memory) Put(key string, value []byte) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Writes++
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}
