package puzzle

import (
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Registry maps years to days to registered puzzles.
type Registry struct {
	years map[int]map[int]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{years: make(map[int]map[int]Descriptor)}
}

// Build registers every entry in order. It rejects malformed labels and any
// two entries that claim the same year and day.
func Build(entries ...Entry) (*Registry, error) {
	r := New()
	for _, e := range entries {
		year, err := ParseYearLabel(e.Year)
		if err != nil {
			return nil, err
		}
		day, err := ParseDayLabel(e.Day)
		if err != nil {
			return nil, err
		}
		if err := r.Register(Key{Year: year, Day: day}, e.New); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds f under k. It fails if k is already taken.
func (r *Registry) Register(k Key, f Factory) error {
	if f == nil {
		return fmt.Errorf("register %s: nil factory", k)
	}
	days, ok := r.years[k.Year]
	if !ok {
		days = make(map[int]Descriptor)
		r.years[k.Year] = days
	}
	if _, exists := days[k.Day]; exists {
		return &KeyError{Kind: ErrRegistrationConflict, Key: k}
	}
	days[k.Day] = Descriptor{Key: k, New: f}
	return nil
}

// Lookup resolves k, reporting ErrUnknownYear or ErrUnknownDay on a miss.
func (r *Registry) Lookup(k Key) (Descriptor, error) {
	days, ok := r.years[k.Year]
	if !ok {
		return Descriptor{}, &KeyError{Kind: ErrUnknownYear, Key: k}
	}
	d, ok := days[k.Day]
	if !ok {
		return Descriptor{}, &KeyError{Kind: ErrUnknownDay, Key: k}
	}
	return d, nil
}

// Years returns the registered years in ascending order.
func (r *Registry) Years() []int {
	years := maps.Keys(r.years)
	slices.Sort(years)
	return years
}

// Days returns the registered days of year in ascending order.
func (r *Registry) Days(year int) []int {
	days := maps.Keys(r.years[year])
	slices.Sort(days)
	return days
}

// Keys returns every registered key ordered by year then day.
func (r *Registry) Keys() []Key {
	var keys []Key
	for _, y := range r.Years() {
		for _, d := range r.Days(y) {
			keys = append(keys, Key{Year: y, Day: d})
		}
	}
	return keys
}

// WriteListing prints every registered puzzle grouped by year.
func WriteListing(w io.Writer, r *Registry) error {
	for _, y := range r.Years() {
		if _, err := fmt.Fprintf(w, "Y%d:\n", y); err != nil {
			return err
		}
		for _, d := range r.Days(y) {
			if _, err := fmt.Fprintf(w, "\tDay%d\n", d); err != nil {
				return err
			}
		}
	}
	return nil
}
