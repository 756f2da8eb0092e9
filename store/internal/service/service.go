package service

import (
	"context"

	"github.com/Astemirdum/book-store/store/internal/model"
	"github.com/Astemirdum/book-store/store/internal/repository"
	"go.uber.org/zap"
)

type RatingPublisher interface {
	PublishRating(ctx context.Context, ev model.RatingEvent) error
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher RatingPublisher
}

type Option func(*Service)

// WithPublisher announces recomputed ratings after commit.
func WithPublisher(p RatingPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
