package http

import (
	"errors"
	"fmt"
	"net/http"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/generated/servers"
	"coffeeshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error kinds returned in the "error" field of every failure response.
const (
	KindMalformedInput         = "malformed_input"
	KindEmptyOrder             = "empty_order"
	KindMalformedLine          = "malformed_line"
	KindItemUnavailable        = "item_unavailable"
	KindSizeNotFound           = "size_not_found"
	KindInvalidTransition      = "invalid_transition"
	KindIllegalCancellation    = "illegal_cancellation"
	KindConcurrentModification = "concurrent_modification"
	KindIdentityConflict       = "identity_conflict"
	KindNotFound               = "not_found"
	KindServerError            = "server_error"
)

const serverErrorMessage = "Internal server error"

// classify maps an error returned by a handler to a status code and body.
// Unknown errors become a generic 500.
func classify(err error) (int, servers.Error) {
	var (
		malformedLine   *services.MalformedLineError
		itemUnavailable *services.ItemUnavailableError
		sizeNotFound    *services.SizeNotFoundError
		httpErr         *echo.HTTPError
	)

	switch {
	case errors.Is(err, queries.ErrMenuQueryFailed):
		return http.StatusInternalServerError, servers.Error{Error: KindServerError, Message: queries.ErrMenuQueryFailed.Error()}
	case errors.Is(err, services.ErrEmptyOrder):
		return badRequest(KindEmptyOrder, err)
	case errors.As(err, &malformedLine):
		return badRequest(KindMalformedLine, malformedLine)
	case errors.As(err, &itemUnavailable):
		return badRequest(KindItemUnavailable, itemUnavailable)
	case errors.As(err, &sizeNotFound):
		return badRequest(KindSizeNotFound, sizeNotFound)
	case errors.Is(err, order.ErrInvalidTransition):
		return badRequest(KindInvalidTransition, err)
	case errors.Is(err, order.ErrIllegalCancellation):
		return badRequest(KindIllegalCancellation, err)
	case errors.Is(err, commands.ErrConcurrentModification):
		return http.StatusConflict, servers.Error{Error: KindConcurrentModification, Message: err.Error()}
	case errors.Is(err, commands.ErrIdentityConflict):
		return http.StatusConflict, servers.Error{Error: KindIdentityConflict, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, servers.Error{Error: KindNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(KindMalformedInput, err)
	case errors.As(err, &httpErr):
		return fromHTTPError(httpErr)
	default:
		return http.StatusInternalServerError, servers.Error{Error: KindServerError, Message: serverErrorMessage}
	}
}

func badRequest(kind string, err error) (int, servers.Error) {
	return http.StatusBadRequest, servers.Error{Error: kind, Message: err.Error()}
}

func fromHTTPError(he *echo.HTTPError) (int, servers.Error) {
	msg := fmt.Sprint(he.Message)
	switch {
	case he.Code == http.StatusNotFound:
		return he.Code, servers.Error{Error: KindNotFound, Message: msg}
	case he.Code >= http.StatusInternalServerError:
		return he.Code, servers.Error{Error: KindServerError, Message: serverErrorMessage}
	default:
		return he.Code, servers.Error{Error: KindMalformedInput, Message: msg}
	}
}

// NewErrorHandler renders every error as {error, message}. Server errors are
// logged with their cause; the response never carries it.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := classify(err)
		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("route", c.Path()),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Warn("write error response", zap.Error(err))
		}
	}
}
