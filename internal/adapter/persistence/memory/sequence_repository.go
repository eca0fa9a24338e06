package memory

import (
	"context"
	"fmt"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"
)

type SequenceGenerator struct {
	s *Store
}

var _ interfaces.ISequenceGenerator = (*SequenceGenerator)(nil)

func NewSequenceGenerator(s *Store) *SequenceGenerator {
	return &SequenceGenerator{s: s}
}

// Configure creates the named counter if it does not exist yet.
func (g *SequenceGenerator) Configure(seq entities.Sequence) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	if _, ok := g.s.sequences[seq.Name]; !ok {
		g.s.sequences[seq.Name] = seq
	}
}

func (g *SequenceGenerator) Next(_ context.Context, name string) (string, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	seq, ok := g.s.sequences[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, interfaces.ErrSequenceNotConfigured)
	}
	seq.Last++
	g.s.sequences[name] = seq
	return seq.Format(seq.Last), nil
}
