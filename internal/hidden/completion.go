package hidden

import "github.com/osse101/IconIdle_Go/internal/domain"

// CompletionSet is an insertion-ordered set of completed challenge ids.
// Ids are never removed.
type CompletionSet struct {
	ids  []string
	seen map[string]struct{}
}

// NewCompletionSet restores a set from a loaded blob, dropping duplicates
func NewCompletionSet(blob domain.CompletionBlob) *CompletionSet {
	s := &CompletionSet{seen: make(map[string]struct{}, len(blob.CompletedGameIDs))}
	for _, id := range blob.CompletedGameIDs {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was new
func (s *CompletionSet) Add(id string) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

// Contains reports membership
func (s *CompletionSet) Contains(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Len returns the number of completed ids
func (s *CompletionSet) Len() int {
	return len(s.ids)
}

// IDs returns the ids in completion order
func (s *CompletionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Blob returns the persisted form
func (s *CompletionSet) Blob() domain.CompletionBlob {
	return domain.CompletionBlob{CompletedGameIDs: s.IDs()}
}
