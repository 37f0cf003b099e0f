package store

import (
	"fmt"
	"strings"
)

// Categories returns a copy of the category list in display order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.data.Categories))
	copy(out, s.data.Categories)
	return out
}

// AddCategory appends a new category. Names are trimmed; empty or duplicate
// names are rejected.
func (s *Store) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidCategory)
	}
	for _, c := range s.data.Categories {
		if c == name {
			return fmt.Errorf("duplicate %q: %w", name, ErrInvalidCategory)
		}
	}
	s.data.Categories = append(s.data.Categories, name)
	return nil
}

// RemoveCategory deletes a category from the list. The last remaining
// category cannot be removed. Existing sessions keep their category string;
// dangling references are tolerated.
func (s *Store) RemoveCategory(name string) error {
	if len(s.data.Categories) <= 1 {
		return fmt.Errorf("cannot remove the last category: %w", ErrInvalidCategory)
	}
	for i, c := range s.data.Categories {
		if c == name {
			s.data.Categories = append(s.data.Categories[:i], s.data.Categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q: %w", name, ErrInvalidCategory)
}
