package model

import (
	"github.com/shopspring/decimal"
)

// NoOwnerName is rendered when a book has no owner.
const NoOwnerName = "not owner"

// Money is a decimal always rendered with two fractional digits.
type Money struct {
	decimal.Decimal
}

func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

func MustMoney(s string) Money {
	return Money{Decimal: decimal.RequireFromString(s)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

func (m Money) String() string {
	return m.StringFixed(2)
}

type Book struct {
	ID             int64    `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	Price          Money    `json:"price" db:"price"`
	AuthorName     string   `json:"author_name" db:"author_name"`
	AnnotatedLikes int      `json:"annotated_likes" db:"annotated_likes"`
	Rating         *Money   `json:"rating" db:"rating"`
	OwnerName      string   `json:"owner_name" db:"owner_name"`
	Readers        []Reader `json:"readers" db:"-"`
	OwnerID        *int64   `json:"-" db:"owner_id"`
}

type Reader struct {
	BookID    int64  `json:"-" db:"book_id"`
	Username  string `json:"username" db:"username"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// BookFilter narrows the catalog listing. Ordering holds raw tokens such as
// "price" or "-author_name".
type BookFilter struct {
	Price    *Money
	Search   string
	Ordering []string
}

type Relation struct {
	ID          int64 `json:"-" db:"id"`
	UserID      int64 `json:"-" db:"user_id"`
	BookID      int64 `json:"book" db:"book_id"`
	Like        bool  `json:"like" db:"like"`
	InBookmarks bool  `json:"in_bookmarks" db:"in_bookmarks"`
	Rating      *int  `json:"rating" db:"rating"`
}

type RatingEvent struct {
	BookID int64  `json:"bookId"`
	Rating *Money `json:"rating"`
}
