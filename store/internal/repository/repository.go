package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/book-store/pkg/auth"
	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/Astemirdum/book-store/store/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	EnsureUser(ctx context.Context, u auth.User) error

	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	BookOwner(ctx context.Context, id int64) (*int64, error)
	CreateBook(ctx context.Context, ownerID int64, in model.BookInput) (int64, error)
	UpdateBook(ctx context.Context, id int64, in model.BookInput) error
	DeleteBook(ctx context.Context, id int64) error

	CreateRelationIfAbsent(ctx context.Context, userID, bookID int64) (bool, error)
	GetRelation(ctx context.Context, userID, bookID int64, forUpdate bool) (model.Relation, error)
	UpdateRelation(ctx context.Context, rel model.Relation) error
	RatingStats(ctx context.Context, bookID int64) (total, votes int64, err error)
	SetBookRating(ctx context.Context, bookID int64, rating *model.Money) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName    = `users`
	bookTableName     = `book`
	relationTableName = `user_book_relation`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type queryer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type txKey struct{}

// conn returns the transaction bound to ctx by WithinTx, or the pool.
func (r *repository) conn(ctx context.Context) queryer {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return r.db
}

// WithinTx runs fn in one transaction; repository calls made with the ctx
// passed to fn join it. Nested calls reuse the outer transaction.
func (r *repository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

// EnsureUser mirrors the token identity into users so that owner and
// relation foreign keys resolve. A username already held by another id
// yields ErrIdentityConflict.
func (r *repository) EnsureUser(ctx context.Context, u auth.User) error {
	q, args, err := qb.Insert(usersTableName).
		Columns("id", "username", "is_staff").
		Values(u.ID, u.Username, u.IsStaff).
		Suffix("ON CONFLICT (id) DO UPDATE SET username = excluded.username, is_staff = excluded.is_staff").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.conn(ctx).ExecContext(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrIdentityConflict
		}
		return errors.Wrap(err, "ensure user")
	}
	return nil
}
