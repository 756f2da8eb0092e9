package model

import (
	"fmt"

	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/shopspring/decimal"
)

type RatingChoice int

const (
	RatingOk RatingChoice = iota + 1
	RatingFine
	RatingGood
	RatingGreat
	RatingAwesome
)

var ratingLabels = map[RatingChoice]string{
	RatingOk:      "Ok",
	RatingFine:    "Fine",
	RatingGood:    "Good",
	RatingGreat:   "Great",
	RatingAwesome: "Awesome",
}

func (r RatingChoice) Valid() bool {
	_, ok := ratingLabels[r]
	return ok
}

func (r RatingChoice) String() string {
	return ratingLabels[r]
}

// RelationPatch is a partial update of a user-book relation; nil fields are
// left unchanged. A null rating counts as absent.
type RelationPatch struct {
	Like        *bool `json:"like"`
	InBookmarks *bool `json:"in_bookmarks"`
	Rating      *int  `json:"rating"`
}

func (p RelationPatch) Validate() error {
	verr := errs.NewValidationError()
	if p.Rating != nil && !RatingChoice(*p.Rating).Valid() {
		verr.Add("rating", fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(*p.Rating)))
	}
	return verr.OrNil()
}

func (p RelationPatch) Apply(rel Relation) Relation {
	if p.Like != nil {
		rel.Like = *p.Like
	}
	if p.InBookmarks != nil {
		rel.InBookmarks = *p.InBookmarks
	}
	if p.Rating != nil {
		r := *p.Rating
		rel.Rating = &r
	}
	return rel
}

func SameRating(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// AverageRating is the mean of votes ratings summing to total, rounded half
// away from zero to two places. No votes means no rating.
func AverageRating(total, votes int64) *Money {
	if votes == 0 {
		return nil
	}
	avg := decimal.NewFromInt(total).DivRound(decimal.NewFromInt(votes), 2)
	return &Money{Decimal: avg}
}
