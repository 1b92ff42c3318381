package handler

import (
	"strconv"

	domainerrors "crm/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bodyBinder binds only the request body; identifiers always come from the path.
//
//nolint:gochecknoglobals
var bodyBinder = &echo.DefaultBinder{}

// bindBody decodes the JSON body into a fresh T. A missing, null or malformed body is INVALID_INPUT.
func bindBody[T any](c echo.Context) (*T, error) {
	var req *T
	if err := bodyBinder.BindBody(c, &req); err != nil || req == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	return req, nil
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails(map[string]string{"param": name, "value": c.Param(name)})
	}

	return id, nil
}
