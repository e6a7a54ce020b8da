package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apihttp "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/generated/servers"
	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"empty order", services.ErrEmptyOrder, http.StatusBadRequest, apihttp.KindEmptyOrder},
		{"malformed line", &services.MalformedLineError{Index: 1}, http.StatusBadRequest, apihttp.KindMalformedLine},
		{"unavailable", &services.ItemUnavailableError{MenuItemID: "m1"}, http.StatusBadRequest, apihttp.KindItemUnavailable},
		{"size", &services.SizeNotFoundError{MenuItemID: "m1", SizeName: "XL"}, http.StatusBadRequest, apihttp.KindSizeNotFound},
		{"transition", order.NewInvalidTransitionError(order.Placed, order.Ready), http.StatusBadRequest, apihttp.KindInvalidTransition},
		{"cancellation", order.NewIllegalCancellationError(order.Ready), http.StatusBadRequest, apihttp.KindIllegalCancellation},
		{"concurrent", fmt.Errorf("%w: raced", commands.ErrConcurrentModification), http.StatusConflict, apihttp.KindConcurrentModification},
		{"identity", fmt.Errorf("%w: retries exhausted", commands.ErrIdentityConflict), http.StatusConflict, apihttp.KindIdentityConflict},
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound, apihttp.KindNotFound},
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest, apihttp.KindMalformedInput},
		{"out of range", errs.NewValueIsOutOfRangeError("limit", 500, 1, 200), http.StatusBadRequest, apihttp.KindMalformedInput},
		{"bind", echo.NewHTTPError(http.StatusBadRequest, "bad json"), http.StatusBadRequest, apihttp.KindMalformedInput},
		{"menu query", fmt.Errorf("%w: throttled", queries.ErrMenuQueryFailed), http.StatusInternalServerError, apihttp.KindServerError},
		{"unknown", errors.New("dial tcp: refused"), http.StatusInternalServerError, apihttp.KindServerError},
	}

	e := echo.New()
	handler := apihttp.NewErrorHandler(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.code, rec.Code)
			body := decode[servers.Error](t, rec)
			assert.Equal(t, tt.kind, body.Error)
			assert.NotContains(t, body.Message, "dial tcp")
		})
	}
}
