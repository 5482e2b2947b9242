package console

import (
	"github.com/tidwall/hashmap"
)

const defaultReservedValueSlots = 64

// Stats accumulates what a console session did to its tree.
type Stats struct {
	Inserts uint64
	Deletes uint64
	toggles *hashmap.Map[int, uint64]
}

func newStats() Stats {
	return Stats{
		toggles: hashmap.New[int, uint64](defaultReservedValueSlots),
	}
}

func (s *Stats) record(value int, inserted bool) {
	if inserted {
		s.Inserts++
	} else {
		s.Deletes++
	}
	count, _ := s.toggles.Get(value)
	s.toggles.Set(value, count+1)
}

// Toggles returns how many times value was inserted or deleted.
func (s *Stats) Toggles(value int) uint64 {
	count, _ := s.toggles.Get(value)
	return count
}

// Values returns the number of distinct values ever entered.
func (s *Stats) Values() int {
	return s.toggles.Len()
}

// Total returns the number of tree changes.
func (s *Stats) Total() uint64 {
	return s.Inserts + s.Deletes
}
