package queries_test

import (
	"testing"

	"fueltrack/internal/core/application/usecases/queries"
	"fueltrack/internal/core/domain/model/order"
	"fueltrack/internal/core/domain/model/user"
	"fueltrack/internal/core/domain/model/vehicle"
	"fueltrack/internal/core/ports"
	"fueltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var client = ports.AccessClaims{UserID: 2, Email: "client@example.com", Role: user.Client}

func TestNewPage(t *testing.T) {
	page, err := queries.NewPage(0, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultPageLimit, page.Limit())
	assert.Zero(t, page.Offset())

	page, err = queries.NewPage(50, 100)
	require.NoError(t, err)
	assert.Equal(t, 50, page.Limit())
	assert.Equal(t, 100, page.Offset())

	_, err = queries.NewPage(queries.MaxPageLimit+1, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewPage(10, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	assert.Equal(t, queries.DefaultPageLimit, queries.Page{}.Limit())
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := map[string]struct {
		validate func() error
		want     error
	}{
		"get user":             {queries.GetUserQuery{}.Validate, queries.ErrGetUserQueryIsNotConstructed},
		"get order":            {queries.GetOrderQuery{}.Validate, queries.ErrGetOrderQueryIsNotConstructed},
		"list orders":          {queries.ListOrdersQuery{}.Validate, queries.ErrListOrdersQueryIsNotConstructed},
		"list order payments":  {queries.ListOrderPaymentsQuery{}.Validate, queries.ErrListOrderPaymentsQueryIsNotConstructed},
		"list payment methods": {queries.ListPaymentMethodsQuery{}.Validate, queries.ErrListPaymentMethodsQueryIsNotConstructed},
		"list vehicles":        {queries.ListVehiclesQuery{}.Validate, queries.ErrListVehiclesQueryIsNotConstructed},
		"list operators":       {queries.ListOperatorsQuery{}.Validate, queries.ErrListOperatorsQueryIsNotConstructed},
		"list notifications":   {queries.ListNotificationsQuery{}.Validate, queries.ErrListNotificationsQueryIsNotConstructed},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.want)
		})
	}
}

func TestQueries_RejectInvalidInput(t *testing.T) {
	_, err := queries.NewGetOrderQuery(client, 0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetUserQuery(ports.AccessClaims{}, 2)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	unknownOrder := order.Unknown
	_, err = queries.NewListOrdersQuery(client, &unknownOrder, queries.Page{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	unknownVehicle := vehicle.Status(42)
	_, err = queries.NewListVehiclesQuery(client, &unknownVehicle)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
