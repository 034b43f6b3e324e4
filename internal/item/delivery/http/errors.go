package http

import (
	"items-service/internal/item"
	pkgErrors "items-service/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become an opaque 500 — a failed lookup must never crash the
// handling path.
func (h *handler) mapError(err error) error {
	switch err {
	case item.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "item not found")
	case item.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(400, "invalid payload")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
