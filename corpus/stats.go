package corpus

import (
	"cmp"
	"slices"
)

// ToolCount is one entry of the per-tool usage distribution.
type ToolCount struct {
	Name  string
	Count int
}

// Stats are corpus-level distribution figures computed during validation.
type Stats struct {
	Total     int
	Negative  int
	MultiTool int
	// ToolCounts is sorted by count descending, ties broken by name,
	// counting every ToolCall occurrence (multi-tool records count each call).
	ToolCounts []ToolCount

	counts map[string]int
}

func (s *Stats) observe(e Example) {
	s.Total++
	calls := e.Assistant().ToolCalls
	if len(calls) == 0 {
		s.Negative++
		return
	}
	if len(calls) > 1 {
		s.MultiTool++
	}
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	for _, call := range calls {
		s.counts[call.Name]++
	}
}

func (s *Stats) finalize() {
	s.ToolCounts = make([]ToolCount, 0, len(s.counts))
	for name, n := range s.counts {
		s.ToolCounts = append(s.ToolCounts, ToolCount{Name: name, Count: n})
	}
	slices.SortFunc(s.ToolCounts, func(a, b ToolCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	s.counts = nil
}

// NegativePercent returns the negative share of the corpus in percent.
func (s Stats) NegativePercent() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Negative) / float64(s.Total)
}

// Top returns the n most-used tools (fewer when the corpus uses fewer tools).
func (s Stats) Top(n int) []ToolCount {
	if n > len(s.ToolCounts) {
		n = len(s.ToolCounts)
	}
	return s.ToolCounts[:n]
}
