package tradecal

import (
	"iter"

	"github.com/etnz/tradecal/date"
)

// Store is the sparse collection of trading records, one per date.
//
// Entries are kept in insertion order, which is the order they are encoded in.
// A Store is owned by a single caller at a time and is not safe for concurrent use.
type Store struct {
	days    []date.Date
	records map[date.Date]Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{records: make(map[date.Date]Record)}
}

// Len returns the number of entries, empty records included.
func (s *Store) Len() int { return len(s.days) }

// Get returns the record at 'day', or the zero Record if there is none.
func (s *Store) Get(day date.Date) Record { return s.records[day] }

// Lookup returns the record at 'day' and true, or the zero Record and false.
func (s *Store) Lookup(day date.Date) (Record, bool) {
	r, ok := s.records[day]
	return r, ok
}

// Set creates the entry for 'day' if needed and sets exactly one field, leaving the others untouched.
func (s *Store) Set(day date.Date, f Field, value string) {
	s.put(day, s.records[day].With(f, value))
}

// Put sets the whole record for 'day'.
//
// Existing value at that date is overwritten but keeps its position.
func (s *Store) Put(day date.Date, r Record) { s.put(day, r) }

func (s *Store) put(day date.Date, r Record) {
	if s.records == nil {
		s.records = make(map[date.Date]Record)
	}
	if _, exists := s.records[day]; !exists {
		s.days = append(s.days, day)
	}
	s.records[day] = r
}

// Clear removes all entries.
func (s *Store) Clear() {
	s.days = s.days[:0]
	clear(s.records)
}

// ReplaceAll replaces the whole content of s with the content of other.
//
// Prior entries are discarded first, nothing is merged.
func (s *Store) ReplaceAll(other *Store) {
	if other == s {
		return
	}
	s.Clear()
	for day, r := range other.Entries() {
		s.put(day, r)
	}
}

// Entries returns an iterator over all date/record pairs, in insertion order.
func (s *Store) Entries() iter.Seq2[date.Date, Record] {
	return func(yield func(date.Date, Record) bool) {
		for _, day := range s.days {
			if !yield(day, s.records[day]) {
				return
			}
		}
	}
}
