package server

import (
	"fmt"
	"sort"

	"github.com/ironsheep/bitmap-bundle-mcp/internal/bundle"
)

// register stores b under a new id. It fails when the registry is full.
func (s *Server) register(name string, paths []string, b bundle.Bundle) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit := s.cfg.MaxBundles; limit > 0 && len(s.bundles) >= limit {
		return nil, fmt.Errorf("bundle limit reached (%d); release a bundle first", limit)
	}

	s.nextID++
	e := &entry{
		id:     fmt.Sprintf("bundle-%d", s.nextID),
		seq:    s.nextID,
		name:   name,
		paths:  paths,
		bundle: b,
	}
	s.bundles[e.id] = e
	return e, nil
}

// lookup returns the entry registered under id.
func (s *Server) lookup(id string) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.bundles[id]
	if !ok {
		return nil, fmt.Errorf("unknown bundle: %s", id)
	}
	return e, nil
}

// release removes id from the registry and reports how many other handles
// still share its bundle.
func (s *Server) release(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.bundles[id]
	if !ok {
		return 0, fmt.Errorf("unknown bundle: %s", id)
	}
	delete(s.bundles, id)

	shared := 0
	for _, other := range s.bundles {
		if other.bundle.Same(e.bundle) {
			shared++
		}
	}
	return shared, nil
}

// entries returns all handles in creation order.
func (s *Server) entries() []*entry {
	s.mu.Lock()
	list := make([]*entry, 0, len(s.bundles))
	for _, e := range s.bundles {
		list = append(list, e)
	}
	s.mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].seq < list[j].seq })
	return list
}

// sharing returns the ids of other handles sharing e's bundle.
func (s *Server) sharing(e *entry) []string {
	var ids []string
	for _, other := range s.entries() {
		if other != e && other.bundle.Same(e.bundle) {
			ids = append(ids, other.id)
		}
	}
	return ids
}
