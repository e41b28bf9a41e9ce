package http

import (
	"errors"
	"net/http"

	"catalog/internal/item"
	"catalog/internal/item/repository"
	pkgErrors "catalog/pkg/errors"
)

var (
	errItemNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	errDuplicateID  = pkgErrors.NewHTTPError(http.StatusConflict, "item already exists")
	errIDRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything not recognised is a store failure and becomes a 500.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return errItemNotFound
	case errors.Is(err, repository.ErrDuplicateID):
		return errDuplicateID
	case errors.Is(err, item.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
