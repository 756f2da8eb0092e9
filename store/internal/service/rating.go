package service

import (
	"context"

	"github.com/Astemirdum/book-store/store/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SetRating recomputes the book rating from all relation ratings and stores
// it; no ratings store NULL. Call it within the relation write transaction.
func (s *Service) SetRating(ctx context.Context, bookID int64) (*model.Money, error) {
	total, votes, err := s.repo.RatingStats(ctx, bookID)
	if err != nil {
		return nil, err
	}
	rating := model.AverageRating(total, votes)
	if err := s.repo.SetBookRating(ctx, bookID, rating); err != nil {
		return nil, errors.Wrap(err, "set rating")
	}
	return rating, nil
}

func (s *Service) publishRating(ctx context.Context, bookID int64, rating *model.Money) {
	if s.publisher == nil {
		return
	}
	ev := model.RatingEvent{BookID: bookID, Rating: rating}
	if err := s.publisher.PublishRating(ctx, ev); err != nil {
		s.log.Warn("publish rating", zap.Int64("book_id", bookID), zap.Error(err))
	}
}
