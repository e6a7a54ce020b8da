package http

import (
	"net/http"
	"strings"

	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const missingQuestionMessage = "Provide a 'question' string in the body."

// AskMenu handles POST /ai/menu-query.
func (s *Server) AskMenu(ctx echo.Context) error {
	var req servers.MenuQueryRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	question, ok := req.Question.(string)
	if !ok || strings.TrimSpace(question) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, missingQuestionMessage)
	}
	q, err := queries.NewAskMenuQuery(question)
	if err != nil {
		return err
	}

	res, err := s.h.AskMenu.Handle(ctx.Request().Context(), q)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.MenuQueryResponse{
		Answer: res.Answer,
		Meta: servers.MenuQueryMeta{
			Model:           res.Model,
			ItemsConsidered: res.ItemsConsidered,
			MaxDocs:         res.MaxDocs,
		},
	})
}
