package service

import (
	"context"

	"github.com/Astemirdum/book-store/pkg/auth"
	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/Astemirdum/book-store/store/internal/model"
	"go.uber.org/zap"
)

// GetRelation returns the caller's relation to the book, creating it with
// defaults on first access.
func (s *Service) GetRelation(ctx context.Context, caller *auth.User, bookID int64) (model.Relation, error) {
	return s.UpdateRelation(ctx, caller, bookID, model.RelationPatch{})
}

// UpdateRelation upserts the caller's relation to the book and applies patch.
// The book rating is recomputed when the relation is new or its rating
// changed.
func (s *Service) UpdateRelation(ctx context.Context, caller *auth.User, bookID int64, patch model.RelationPatch) (model.Relation, error) {
	if caller == nil {
		return model.Relation{}, errs.ErrUnauthenticated
	}
	if err := patch.Validate(); err != nil {
		return model.Relation{}, err
	}

	var (
		rel    model.Relation
		rated  bool
		rating *model.Money
	)
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureUser(ctx, *caller); err != nil {
			return err
		}
		created, err := s.repo.CreateRelationIfAbsent(ctx, caller.ID, bookID)
		if err != nil {
			return err
		}
		current, err := s.repo.GetRelation(ctx, caller.ID, bookID, true)
		if err != nil {
			return err
		}

		rel = patch.Apply(current)
		if rel != current {
			if err := s.repo.UpdateRelation(ctx, rel); err != nil {
				return err
			}
		}
		if created || !model.SameRating(current.Rating, rel.Rating) {
			if rating, err = s.SetRating(ctx, bookID); err != nil {
				return err
			}
			rated = true
		}
		return nil
	})
	if err != nil {
		return model.Relation{}, err
	}

	if rated {
		s.log.Debug("rating recomputed", zap.Int64("book_id", bookID), zap.Bool("rated", rating != nil))
		s.publishRating(ctx, bookID, rating)
	}
	return rel, nil
}
