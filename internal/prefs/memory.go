package prefs

import (
	"context"
	"fmt"

	"github.com/yah600/okey-core/internal/domain"
)

// Memory is an in-process Store. It is the default when no snapshot file is
// configured, and the implementation tests run against.
type Memory struct {
	p *Preferences
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (*Preferences, error) {
	if m.p == nil {
		return nil, fmt.Errorf("prefs.Memory.Load: %w", domain.ErrNotFound)
	}
	cp := *m.p
	return &cp, nil
}

func (m *Memory) Save(_ context.Context, p *Preferences) error {
	cp := *p
	m.p = &cp
	return nil
}
