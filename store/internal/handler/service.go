package handler

import (
	"context"

	"github.com/Astemirdum/book-store/pkg/auth"
	"github.com/Astemirdum/book-store/store/internal/model"
	"github.com/Astemirdum/book-store/store/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, caller *auth.User, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, caller *auth.User, id int64, in model.BookInput, partial bool) (model.Book, error)
	DeleteBook(ctx context.Context, caller *auth.User, id int64) error
}

type RelationService interface {
	GetRelation(ctx context.Context, caller *auth.User, bookID int64) (model.Relation, error)
	UpdateRelation(ctx context.Context, caller *auth.User, bookID int64, patch model.RelationPatch) (model.Relation, error)
}

var (
	_ BookService     = (*service.Service)(nil)
	_ RelationService = (*service.Service)(nil)
)
