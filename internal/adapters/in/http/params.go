package http

import (
	"fmt"

	"fueltrack/internal/core/application/usecases/queries"
	"fueltrack/internal/core/domain/model/kernel"
	"fueltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathID binds the {name} path parameter as an entity identifier.
func pathID(c echo.Context, name string) (kernel.ID, error) {
	var raw int64
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.NewID(raw)
}

// queryPage binds the optional limit and offset query parameters.
func queryPage(c echo.Context) (queries.Page, error) {
	var limit, offset int
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		return queries.Page{}, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", c.QueryParams(), &offset); err != nil {
		return queries.Page{}, errs.NewValueIsInvalidErrorWithCause("offset", err)
	}
	return queries.NewPage(limit, offset)
}

// queryString binds an optional string query parameter; nil when absent.
func queryString(c echo.Context, name string) (*string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	var value bool
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// bindBody decodes the JSON request body into dst.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", fmt.Errorf("malformed request body: %w", err))
	}
	return nil
}
