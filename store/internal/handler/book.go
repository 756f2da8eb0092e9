package handler

import (
	"net/http"
	"strings"

	"github.com/Astemirdum/book-store/pkg/auth"
	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/Astemirdum/book-store/store/internal/model"
	"github.com/labstack/echo/v4"
)

// ListBooks accepts price, search and a comma separated ordering.
func (h *Handler) ListBooks(c echo.Context) error {
	var filter model.BookFilter
	if p := c.QueryParam("price"); p != "" {
		price, err := model.NewMoney(p)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, map[string][]string{"price": {errs.MsgNumber}})
		}
		filter.Price = &price
	}
	filter.Search = strings.TrimSpace(c.QueryParam("search"))
	if o := c.QueryParam("ordering"); o != "" {
		for _, field := range strings.Split(o, ",") {
			if field = strings.TrimSpace(field); field != "" {
				filter.Ordering = append(filter.Ordering, field)
			}
		}
	}

	books, err := h.bookSvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.bookSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	in, err := bindBook(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	book, err := h.bookSvc.CreateBook(ctx, auth.GetUser(ctx), in)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	return h.updateBook(c, false)
}

func (h *Handler) PartialUpdateBook(c echo.Context) error {
	return h.updateBook(c, true)
}

func (h *Handler) updateBook(c echo.Context, partial bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	in, err := bindBook(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	book, err := h.bookSvc.UpdateBook(ctx, auth.GetUser(ctx), id, in, partial)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.bookSvc.DeleteBook(ctx, auth.GetUser(ctx), id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func bindBook(c echo.Context) (model.BookInput, error) {
	var in model.BookInput
	if err := c.Bind(&in); err != nil {
		return in, err
	}
	if err := c.Validate(&in); err != nil {
		return in, validationFields(err)
	}
	return in, nil
}
