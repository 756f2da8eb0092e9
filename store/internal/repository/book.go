package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/Astemirdum/book-store/store/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var orderable = map[string]string{
	"price":       "b.price",
	"author_name": "b.author_name",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// booksQuery selects books with owner name and like count aggregated in one
// statement.
func booksQuery() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.name", "b.price", "b.author_name", "b.rating", "b.owner_id",
		`count(ubr.id) FILTER (WHERE ubr."like") AS annotated_likes`,
	).
		Column(sq.Expr("coalesce(u.username, ?) AS owner_name", model.NoOwnerName)).
		From(bookTableName + " b").
		LeftJoin(usersTableName + " u ON u.id = b.owner_id").
		LeftJoin(relationTableName + " ubr ON ubr.book_id = b.id").
		GroupBy("b.id", "u.username")
}

func orderBy(ordering []string) []string {
	clauses := make([]string, 0, len(ordering)+1)
	for _, field := range ordering {
		field = strings.TrimSpace(field)
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			field, dir = field[1:], "DESC"
		}
		if col, ok := orderable[field]; ok {
			clauses = append(clauses, col+" "+dir)
		}
	}
	return append(clauses, "b.id ASC")
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	q := booksQuery()
	if filter.Price != nil {
		q = q.Where(sq.Eq{"b.price": filter.Price.Decimal})
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		q = q.Where(sq.Or{
			sq.ILike{"b.author_name": pattern},
			sq.ILike{"b.name": pattern},
		})
	}
	q = q.OrderBy(orderBy(filter.Ordering)...)

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	books := make([]model.Book, 0)
	if err := r.conn(ctx).SelectContext(ctx, &books, query, args...); err != nil {
		return nil, errors.Wrap(err, "select books")
	}
	if err := r.loadReaders(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	query, args, err := booksQuery().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.conn(ctx).GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		r.log.Error("GetBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, errors.Wrap(err, "get book")
	}
	books := []model.Book{book}
	if err := r.loadReaders(ctx, books); err != nil {
		return model.Book{}, err
	}
	return books[0], nil
}

// loadReaders fills Readers for all books with a single query.
func (r *repository) loadReaders(ctx context.Context, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int64, len(books))
	byID := make(map[int64]int, len(books))
	for i := range books {
		ids[i] = books[i].ID
		byID[books[i].ID] = i
		books[i].Readers = []model.Reader{}
	}

	query, args, err := qb.Select("ubr.book_id", "u.username", "u.first_name", "u.last_name").
		From(relationTableName + " ubr").
		Join(usersTableName + " u ON u.id = ubr.user_id").
		Where(sq.Eq{"ubr.book_id": ids}).
		OrderBy("ubr.id").
		ToSql()
	if err != nil {
		return err
	}

	var readers []model.Reader
	if err := r.conn(ctx).SelectContext(ctx, &readers, query, args...); err != nil {
		return errors.Wrap(err, "select readers")
	}
	for _, rd := range readers {
		if i, ok := byID[rd.BookID]; ok {
			books[i].Readers = append(books[i].Readers, rd)
		}
	}
	return nil
}

// BookOwner locks the book row for the rest of the transaction.
func (r *repository) BookOwner(ctx context.Context, id int64) (*int64, error) {
	query, args, err := qb.Select("owner_id").
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, err
	}

	var owner sql.NullInt64
	if err := r.conn(ctx).QueryRowxContext(ctx, query, args...).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, errors.Wrap(err, "book owner")
	}
	if !owner.Valid {
		return nil, nil
	}
	return &owner.Int64, nil
}

func (r *repository) CreateBook(ctx context.Context, ownerID int64, in model.BookInput) (int64, error) {
	query, args, err := qb.Insert(bookTableName).
		Columns("name", "price", "author_name", "owner_id").
		Values(*in.Name, in.Price.Decimal, *in.AuthorName, ownerID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.conn(ctx).QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return 0, errors.Wrap(err, "insert book")
	}
	return id, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, in model.BookInput) error {
	set := make(map[string]interface{}, 3)
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Price != nil {
		set["price"] = in.Price.Decimal
	}
	if in.AuthorName != nil {
		set["author_name"] = *in.AuthorName
	}
	if len(set) == 0 {
		return nil
	}

	query, args, err := qb.Update(bookTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "update book")
	}
	return expectAffected(res)
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "delete book")
	}
	return expectAffected(res)
}

func (r *repository) SetBookRating(ctx context.Context, bookID int64, rating *model.Money) error {
	var value interface{}
	if rating != nil {
		value = rating.Decimal
	}
	query, args, err := qb.Update(bookTableName).
		Set("rating", value).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "set book rating")
	}
	return expectAffected(res)
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
