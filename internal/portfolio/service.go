package portfolio

import (
	"context"
	"errors"
	"slices"

	"go.uber.org/zap"
)

// Source loads the stored portfolio document.
type Source interface {
	Get(ctx context.Context) (*Portfolio, error)
}

type PortfolioService struct {
	source Source
	logger *zap.Logger
}

// NewPortfolioService serves the portfolio from source, falling back to the embedded
// document when source is nil or has not been seeded.
func NewPortfolioService(source Source, logger *zap.Logger) *PortfolioService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortfolioService{source: source, logger: logger}
}

func (s *PortfolioService) Portfolio(ctx context.Context) (*Portfolio, error) {
	if s.source == nil {
		return Default()
	}

	p, err := s.source.Get(ctx)
	if errors.Is(err, ErrNotSeeded) {
		s.logger.Debug("portfolio not seeded, serving embedded default")
		return Default()
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PortfolioService) Section(ctx context.Context, name string) (any, error) {
	if !slices.Contains(Sections, name) {
		return nil, ErrUnknownSection
	}
	p, err := s.Portfolio(ctx)
	if err != nil {
		return nil, err
	}
	return p.Section(name)
}
