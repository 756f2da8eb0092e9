package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Astemirdum/book-store/store/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// httpError maps service errors onto responses.
func (h *Handler) httpError(err error) error {
	var verr *errs.ValidationError
	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Fields)
	case errors.Is(err, errs.ErrNotFound):
		return notFound()
	case errors.Is(err, errs.ErrPermissionDenied):
		return echo.NewHTTPError(http.StatusForbidden, echo.Map{"detail": errs.DetailPermissionDenied})
	case errors.Is(err, errs.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{"detail": errs.DetailUnauthenticated})
	case errors.Is(err, errs.ErrIdentityConflict):
		return echo.NewHTTPError(http.StatusConflict, echo.Map{"detail": errs.DetailIdentityConflict})
	default:
		h.log.Error("internal", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, errs.MsgInternal).SetInternal(err)
	}
}

func notFound() error {
	return echo.NewHTTPError(http.StatusNotFound, echo.Map{"detail": errs.DetailNotFound})
}

// validationFields converts struct tag violations to field messages.
func validationFields(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	verr := errs.NewValidationError()
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "max":
			verr.Add(fe.Field(), fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param()))
		default:
			verr.Add(fe.Field(), "Invalid value.")
		}
	}
	return echo.NewHTTPError(http.StatusBadRequest, verr.Fields)
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound()
	}
	return id, nil
}
