// Package monkey serves the built-in monkey reference table: listing,
// case-insensitive lookup, substring and fuzzy search, and random picks.
package monkey

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sahilchouksey/todo-monkeys/model"
	"github.com/sahilchouksey/todo-monkeys/services/fuzzy"
	"github.com/sahilchouksey/todo-monkeys/services/metrics"
	"golang.org/x/text/cases"
)

// DefaultMaxDistance is the fuzzy search threshold used when none is given
const DefaultMaxDistance = 3

// Operation names reported by the monkey metrics
const (
	OpList   = "monkey.list"
	OpFind   = "monkey.find"
	OpSearch = "monkey.search"
	OpFuzzy  = "monkey.fuzzy"
	OpRandom = "monkey.random"
)

// Operations lists every operation the service instruments
var Operations = []string{OpList, OpFind, OpSearch, OpFuzzy, OpRandom}

// Service answers queries over an immutable monkey table
type Service struct {
	source  []model.Monkey
	intN    func(n int) int
	metrics *metrics.Recorder

	once    sync.Once
	monkeys []model.Monkey
	folded  []string       // folded names, index-aligned with monkeys
	byName  map[string]int // folded name -> index
	picks   []atomic.Int64
}

// Option customises a Service
type Option func(*Service)

// WithMonkeys replaces the built-in table
func WithMonkeys(monkeys []model.Monkey) Option {
	return func(s *Service) {
		s.source = monkeys
	}
}

// WithRandom replaces the random index source; intN must return [0, n)
func WithRandom(intN func(n int) int) Option {
	return func(s *Service) {
		s.intN = intN
	}
}

// WithRecorder shares a metrics recorder with the caller
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(s *Service) {
		s.metrics = recorder
	}
}

// NewService creates a monkey service. The table is indexed lazily on first use.
func NewService(opts ...Option) *Service {
	s := &Service{
		source: referenceMonkeys,
		intN:   rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewRecorder(Operations...)
	}
	return s
}

func (s *Service) load() {
	s.once.Do(func() {
		s.monkeys = slices.Clone(s.source)
		s.folded = make([]string, len(s.monkeys))
		s.byName = make(map[string]int, len(s.monkeys))
		s.picks = make([]atomic.Int64, len(s.monkeys))
		for i, m := range s.monkeys {
			key := fold(m.Name)
			s.folded[i] = key
			// first entry wins on duplicate names
			if _, dup := s.byName[key]; !dup {
				s.byName[key] = i
			}
		}
	})
}

func fold(name string) string {
	// a Caser keeps state, so each call gets its own
	return cases.Fold().String(strings.TrimSpace(name))
}

// Metrics exposes the recorder backing the performance view
func (s *Service) Metrics() *metrics.Recorder {
	return s.metrics
}

// All returns a copy of the table in display order
func (s *Service) All() []model.Monkey {
	done := s.metrics.Time(OpList)
	defer done(nil)

	s.load()
	return slices.Clone(s.monkeys)
}

// FindByName looks a monkey up by its exact name, ignoring case and
// surrounding whitespace
func (s *Service) FindByName(name string) (model.Monkey, bool) {
	done := s.metrics.Time(OpFind)
	defer done(nil)

	s.load()
	i, ok := s.byName[fold(name)]
	if !ok {
		return model.Monkey{}, false
	}
	return s.monkeys[i], true
}

// Search returns the monkeys whose name contains query, ignoring case.
// A blank query matches nothing.
func (s *Service) Search(query string) []model.Monkey {
	done := s.metrics.Time(OpSearch)
	defer done(nil)

	s.load()
	needle := fold(query)
	results := []model.Monkey{}
	if needle == "" {
		return results
	}
	for i, name := range s.folded {
		if strings.Contains(name, needle) {
			results = append(results, s.monkeys[i])
		}
	}
	return results
}

// FuzzySearch ranks monkeys by edit distance between query and their name,
// keeping those within maxDistance. Results are ordered by distance, ties
// keep table order.
func (s *Service) FuzzySearch(query string, maxDistance int) []model.MonkeyMatch {
	done := s.metrics.Time(OpFuzzy)
	defer done(nil)

	s.load()
	needle := fold(query)
	matches := []model.MonkeyMatch{}
	if needle == "" || maxDistance < 0 {
		return matches
	}

	for i, name := range s.folded {
		if d := fuzzy.Levenshtein(needle, name); d <= maxDistance {
			matches = append(matches, model.MonkeyMatch{Monkey: s.monkeys[i], Distance: d})
		}
	}
	slices.SortStableFunc(matches, func(a, b model.MonkeyMatch) int {
		return a.Distance - b.Distance
	})
	return matches
}

// Random picks one monkey uniformly and counts the pick
func (s *Service) Random() (model.Monkey, bool) {
	done := s.metrics.Time(OpRandom)
	defer done(nil)

	s.load()
	if len(s.monkeys) == 0 {
		return model.Monkey{}, false
	}
	i := s.intN(len(s.monkeys))
	s.picks[i].Add(1)
	return s.monkeys[i], true
}

// AccessCount returns how many times Random picked the named monkey
func (s *Service) AccessCount(name string) int64 {
	s.load()
	i, ok := s.byName[fold(name)]
	if !ok {
		return 0
	}
	return s.picks[i].Load()
}

// PickCounts returns the random pick count for every monkey picked at least once
func (s *Service) PickCounts() map[string]int64 {
	s.load()
	counts := map[string]int64{}
	for i := range s.picks {
		if n := s.picks[i].Load(); n > 0 {
			counts[s.monkeys[i].Name] = n
		}
	}
	return counts
}
