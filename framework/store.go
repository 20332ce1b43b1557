package framework

import "sort"

// Key identifies a value in a Store, such as "token.supplier" or "receivable.id".
type Key string

// Store carries values produced by earlier steps into later ones for the lifetime of a run.
//
// It is only ever mutated by the Runner between steps, so it has no locking.
type Store struct {
	values map[Key]string
}

func NewStore() *Store {
	return &Store{values: make(map[Key]string)}
}

// Get returns the value for a key and whether it is present. Empty strings count as absent.
func (s *Store) Get(key Key) (string, bool) {
	v, ok := s.values[key]
	return v, ok && v != ""
}

// Value returns the value for a key, or "" if it is absent.
func (s *Store) Value(key Key) string {
	v, _ := s.Get(key)
	return v
}

func (s *Store) Set(key Key, value string) {
	s.values[key] = value
}

func (s *Store) Has(key Key) bool {
	_, ok := s.Get(key)
	return ok
}

// Missing returns the keys from the list that do not have a value, in the order given.
func (s *Store) Missing(keys ...Key) []Key {
	var ret []Key
	for _, k := range keys {
		if !s.Has(k) {
			ret = append(ret, k)
		}
	}
	return ret
}

// Keys returns all keys currently holding a value, sorted.
func (s *Store) Keys() []Key {
	ret := make([]Key, 0, len(s.values))
	for k := range s.values {
		if s.Has(k) {
			ret = append(ret, k)
		}
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}
