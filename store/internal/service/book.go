package service

import (
	"context"

	"github.com/Astemirdum/book-store/pkg/auth"
	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/Astemirdum/book-store/store/internal/model"
	"github.com/Astemirdum/book-store/store/internal/policy"
	"go.uber.org/zap"
)

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, caller *auth.User, in model.BookInput) (model.Book, error) {
	if caller == nil {
		return model.Book{}, errs.ErrUnauthenticated
	}
	if err := in.Validate(false); err != nil {
		return model.Book{}, err
	}

	var id int64
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.EnsureUser(ctx, *caller); err != nil {
			return err
		}
		var err error
		id, err = s.repo.CreateBook(ctx, caller.ID, in)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	s.log.Debug("book created", zap.Int64("id", id), zap.Int64("owner", caller.ID))
	return s.repo.GetBook(ctx, id)
}

// UpdateBook changes name, price and author; partial allows a subset.
func (s *Service) UpdateBook(ctx context.Context, caller *auth.User, id int64, in model.BookInput, partial bool) (model.Book, error) {
	err := s.mutate(ctx, caller, id, func(ctx context.Context) error {
		if err := in.Validate(partial); err != nil {
			return err
		}
		return s.repo.UpdateBook(ctx, id, in)
	})
	if err != nil {
		return model.Book{}, err
	}
	return s.repo.GetBook(ctx, id)
}

func (s *Service) DeleteBook(ctx context.Context, caller *auth.User, id int64) error {
	return s.mutate(ctx, caller, id, func(ctx context.Context) error {
		return s.repo.DeleteBook(ctx, id)
	})
}

// mutate locks the book, checks the caller against its owner and runs fn in
// the same transaction.
func (s *Service) mutate(ctx context.Context, caller *auth.User, id int64, fn func(ctx context.Context) error) error {
	if caller == nil {
		return errs.ErrUnauthenticated
	}
	return s.repo.WithinTx(ctx, func(ctx context.Context) error {
		owner, err := s.repo.BookOwner(ctx, id)
		if err != nil {
			return err
		}
		if !policy.CanMutate(caller, owner, false) {
			return errs.ErrPermissionDenied
		}
		return fn(ctx)
	})
}
