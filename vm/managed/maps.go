package managed

// OrderedMap is a buffer to buffer map iterated in first-insertion order.
type OrderedMap struct {
	keys   []string
	values map[string][]byte
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string][]byte)}
}

func (m *OrderedMap) Put(key, value []byte) {
	k := string(key)
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.values[k] = v
}

func (m *OrderedMap) Get(key []byte) ([]byte, bool) {
	v, ok := m.values[string(key)]
	return v, ok
}

func (m *OrderedMap) Contains(key []byte) bool {
	_, ok := m.values[string(key)]
	return ok
}

// Remove deletes key and returns its former value.
func (m *OrderedMap) Remove(key []byte) ([]byte, bool) {
	k := string(key)
	v, ok := m.values[k]
	if !ok {
		return nil, false
	}
	delete(m.values, k)
	for i, existing := range m.keys {
		if existing == k {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return v, true
}

func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap) Keys() [][]byte {
	keys := make([][]byte, len(m.keys))
	for i, k := range m.keys {
		keys[i] = []byte(k)
	}
	return keys
}

func (heap *Heap) Map(h int32) (*OrderedMap, error) {
	m, ok := heap.maps[h]
	if !ok {
		return nil, invalidHandle(tableMap, h)
	}
	return m, nil
}

func (heap *Heap) NewMap() int32 {
	h := heap.allocate(tableMap)
	heap.maps[h] = NewOrderedMap()
	return h
}

func (heap *Heap) mapAndKey(mapHandle, keyHandle int32) (*OrderedMap, []byte, error) {
	m, err := heap.Map(mapHandle)
	if err != nil {
		return nil, nil, err
	}
	key, err := heap.Buffer(keyHandle)
	if err != nil {
		return nil, nil, err
	}
	return m, key, nil
}

func (heap *Heap) MapPut(mapHandle, keyHandle, valueHandle int32) error {
	m, key, err := heap.mapAndKey(mapHandle, keyHandle)
	if err != nil {
		return err
	}
	value, err := heap.Buffer(valueHandle)
	if err != nil {
		return err
	}
	m.Put(key, value)
	return nil
}

// MapGet writes the value to out, an empty buffer when the key is absent.
func (heap *Heap) MapGet(mapHandle, keyHandle, out int32) error {
	m, key, err := heap.mapAndKey(mapHandle, keyHandle)
	if err != nil {
		return err
	}
	value, _ := m.Get(key)
	heap.SetBuffer(out, value)
	return nil
}

// MapRemove writes the removed value to out, an empty buffer when absent.
func (heap *Heap) MapRemove(mapHandle, keyHandle, out int32) error {
	m, key, err := heap.mapAndKey(mapHandle, keyHandle)
	if err != nil {
		return err
	}
	value, _ := m.Remove(key)
	heap.SetBuffer(out, value)
	return nil
}

func (heap *Heap) MapContains(mapHandle, keyHandle int32) (bool, error) {
	m, key, err := heap.mapAndKey(mapHandle, keyHandle)
	if err != nil {
		return false, err
	}
	return m.Contains(key), nil
}
