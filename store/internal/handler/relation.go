package handler

import (
	"net/http"

	"github.com/Astemirdum/book-store/pkg/auth"
	"github.com/Astemirdum/book-store/store/internal/model"
	"github.com/labstack/echo/v4"
)

// GetRelation returns the caller's relation to the book, creating it on first
// access.
func (h *Handler) GetRelation(c echo.Context) error {
	bookID, err := pathID(c, "book")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	rel, err := h.relationSvc.GetRelation(ctx, auth.GetUser(ctx), bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rel)
}

func (h *Handler) UpdateRelation(c echo.Context) error {
	bookID, err := pathID(c, "book")
	if err != nil {
		return err
	}
	var patch model.RelationPatch
	if err := c.Bind(&patch); err != nil {
		return err
	}
	ctx := c.Request().Context()
	rel, err := h.relationSvc.UpdateRelation(ctx, auth.GetUser(ctx), bookID, patch)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rel)
}
