package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/Astemirdum/book-store/store/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// CreateRelationIfAbsent inserts the (user, book) relation with defaults and
// reports whether this call created it. A missing book yields ErrNotFound.
func (r *repository) CreateRelationIfAbsent(ctx context.Context, userID, bookID int64) (bool, error) {
	query, args, err := qb.Insert(relationTableName).
		Columns("user_id", "book_id").
		Values(userID, bookID).
		Suffix("ON CONFLICT (user_id, book_id) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return false, err
	}

	var id int64
	err = r.conn(ctx).QueryRowxContext(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case isForeignKeyViolation(err):
		return false, errs.ErrNotFound
	default:
		return false, errors.Wrap(err, "insert relation")
	}
}

func (r *repository) GetRelation(ctx context.Context, userID, bookID int64, forUpdate bool) (model.Relation, error) {
	q := qb.Select("id", "user_id", "book_id", `"like"`, "in_bookmarks", "rating").
		From(relationTableName).
		Where(sq.Eq{"user_id": userID, "book_id": bookID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.Relation{}, err
	}

	var rel model.Relation
	if err := r.conn(ctx).GetContext(ctx, &rel, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Relation{}, errs.ErrNotFound
		}
		return model.Relation{}, errors.Wrap(err, "get relation")
	}
	return rel, nil
}

// UpdateRelation writes the mutable flags; user and book never change.
func (r *repository) UpdateRelation(ctx context.Context, rel model.Relation) error {
	var rating interface{}
	if rel.Rating != nil {
		rating = *rel.Rating
	}
	query, args, err := qb.Update(relationTableName).
		Set(`"like"`, rel.Like).
		Set("in_bookmarks", rel.InBookmarks).
		Set("rating", rating).
		Where(sq.Eq{"id": rel.ID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "update relation")
	}
	return expectAffected(res)
}

func (r *repository) RatingStats(ctx context.Context, bookID int64) (total, votes int64, err error) {
	query, args, err := qb.Select("coalesce(sum(rating), 0)", "count(rating)").
		From(relationTableName).
		Where(sq.Eq{"book_id": bookID}).
		ToSql()
	if err != nil {
		return 0, 0, err
	}
	if err := r.conn(ctx).QueryRowxContext(ctx, query, args...).Scan(&total, &votes); err != nil {
		return 0, 0, errors.Wrap(err, "rating stats")
	}
	return total, votes, nil
}

func isForeignKeyViolation(err error) bool {
	return hasCode(err, pgerrcode.ForeignKeyViolation)
}

func isUniqueViolation(err error) bool {
	return hasCode(err, pgerrcode.UniqueViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
