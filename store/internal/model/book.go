package model

import (
	"fmt"
	"strings"

	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/shopspring/decimal"
)

const (
	priceMaxDigits = 7
	priceDecimals  = 2
)

var priceLimit = decimal.New(1, priceMaxDigits-priceDecimals)

// BookInput is the writable part of a book. Nil fields are absent from the
// request; owner and rating are never accepted.
type BookInput struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Price      *Money  `json:"price"`
	AuthorName *string `json:"author_name" validate:"omitempty,max=255"`
}

// Validate checks the input; partial allows absent fields (PATCH).
func (in BookInput) Validate(partial bool) error {
	verr := errs.NewValidationError()
	checkText(verr, "name", in.Name, partial)
	checkText(verr, "author_name", in.AuthorName, partial)

	switch {
	case in.Price == nil:
		if !partial {
			verr.Add("price", errs.MsgRequired)
		}
	case in.Price.IsNegative():
		verr.Add("price", "Ensure this value is greater than or equal to 0.")
	case !in.Price.Equal(in.Price.Truncate(priceDecimals)):
		verr.Add("price", fmt.Sprintf("Ensure that there are no more than %d decimal places.", priceDecimals))
	case in.Price.GreaterThanOrEqual(priceLimit):
		verr.Add("price", fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", priceMaxDigits-priceDecimals))
	}
	return verr.OrNil()
}

func (in BookInput) Empty() bool {
	return in.Name == nil && in.Price == nil && in.AuthorName == nil
}

func checkText(verr *errs.ValidationError, field string, v *string, partial bool) {
	if v == nil {
		if !partial {
			verr.Add(field, errs.MsgRequired)
		}
		return
	}
	if strings.TrimSpace(*v) == "" {
		verr.Add(field, errs.MsgBlank)
	}
}
