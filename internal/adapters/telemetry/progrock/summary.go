package progrock

import (
	"context"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/sdkcompat/internal/core/domain"
)

// Summary is a progrock.Writer that keeps the latest state of every vertex
// it sees. Logs and group updates are dropped.
type Summary struct {
	mu    sync.Mutex
	order []string
	steps map[string]domain.Step
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{steps: make(map[string]domain.Step)}
}

// WriteStatus implements progrock.Writer.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		if _, seen := s.steps[v.Id]; !seen {
			s.order = append(s.order, v.Id)
		}
		step := domain.Step{Name: v.Name, Cached: v.Cached, Done: v.Completed != nil}
		switch {
		case v.Error != nil:
			step.Error = *v.Error
		case v.Canceled:
			step.Error = context.Canceled.Error()
		}
		s.steps[v.Id] = step
	}
	return nil
}

// Close implements progrock.Writer. Steps stay readable afterwards.
func (s *Summary) Close() error {
	return nil
}

// Steps returns every vertex in the order it was first recorded.
func (s *Summary) Steps() []domain.Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Step, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.steps[id])
	}
	return out
}
