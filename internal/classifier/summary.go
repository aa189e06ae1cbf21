// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"sort"
	"sync"

	"ferret-records/internal/detector"
)

// Summary is the set of categories matched by at least one row of a run.
// It is safe for concurrent use.
type Summary struct {
	mu   sync.Mutex
	seen map[detector.Category]struct{}
}

// NewSummary returns an empty summary
func NewSummary() *Summary {
	return &Summary{seen: make(map[detector.Category]struct{})}
}

// Add records that a category was matched
func (s *Summary) Add(c detector.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[c] = struct{}{}
}

// Merge adds every category of other to s
func (s *Summary) Merge(other *Summary) {
	if other == nil || other == s {
		return
	}
	cats := other.Categories()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cats {
		s.seen[c] = struct{}{}
	}
}

// Has reports whether the category was matched
func (s *Summary) Has(c detector.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[c]
	return ok
}

// Len returns the number of matched categories
func (s *Summary) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

// Categories returns the matched categories in canonical order, followed by
// any other categories sorted by name
func (s *Summary) Categories() []detector.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]detector.Category, 0, len(s.seen))
	for _, c := range detector.Categories {
		if _, ok := s.seen[c]; ok {
			out = append(out, c)
		}
	}
	if len(out) == len(s.seen) {
		return out
	}

	var extra []detector.Category
	for c := range s.seen {
		if _, ok := detector.ParseCategory(string(c)); !ok {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}
