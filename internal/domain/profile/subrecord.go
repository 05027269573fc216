package profile

import "github.com/google/uuid"

// SubRecord is an entry of one of the profile sub-collections (experience,
// education), identified by a uuid assigned at creation.
type SubRecord interface {
	EntryID() uuid.UUID
}

// Prepend inserts the entry at position 0 so the collection stays
// newest-first.
func Prepend[T SubRecord](entries []T, entry T) []T {
	out := make([]T, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...)
}

// RemoveByID removes the first entry with the given id. The second return
// value reports whether a matching entry existed; the input is unchanged
// when it did not.
func RemoveByID[T SubRecord](entries []T, id uuid.UUID) ([]T, bool) {
	for i, e := range entries {
		if e.EntryID() == id {
			out := make([]T, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			return append(out, entries[i+1:]...), true
		}
	}
	return entries, false
}
