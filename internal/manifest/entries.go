package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Entries maps ids to commands or skills and remembers the order in which
// ids were first added. Replacing an existing id keeps its position. The zero
// value is an empty, usable set.
type Entries[T any] struct {
	ids   []string
	items map[string]T
}

// Set records v under id. It returns the previous value and true when id was
// already present.
func (e *Entries[T]) Set(id string, v T) (T, bool) {
	if e.items == nil {
		e.items = make(map[string]T)
	}
	prev, exists := e.items[id]
	if !exists {
		e.ids = append(e.ids, id)
	}
	e.items[id] = v
	return prev, exists
}

// Lookup returns the value stored under id.
func (e Entries[T]) Lookup(id string) (T, bool) {
	v, ok := e.items[id]
	return v, ok
}

// Get returns the value stored under id, or the zero value.
func (e Entries[T]) Get(id string) T {
	return e.items[id]
}

// Len returns the number of ids.
func (e Entries[T]) Len() int {
	return len(e.ids)
}

// IDs returns the ids in insertion order.
func (e Entries[T]) IDs() []string {
	return append([]string(nil), e.ids...)
}

// All iterates over ids and values in insertion order.
func (e Entries[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, id := range e.ids {
			if !yield(id, e.items[id]) {
				return
			}
		}
	}
}

// MarshalJSON writes the entries as an object whose keys follow insertion
// order. Keys and values are written without HTML escaping; the enclosing
// encoder applies indentation.
func (e Entries[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, id := range e.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(id); err != nil {
			return nil, fmt.Errorf("encoding key %q: %w", id, err)
		}
		buf.WriteByte(':')
		if err := enc.Encode(e.items[id]); err != nil {
			return nil, fmt.Errorf("encoding %q: %w", id, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, keeping the order of its keys. A repeated
// key replaces the earlier value in place.
func (e *Entries[T]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	*e = Entries[T]{}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decoding %q: %w", id, err)
		}
		e.Set(id, v)
	}

	_, err = dec.Token()
	return err
}
