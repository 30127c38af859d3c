package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/sqlplayground/playground/internal/application/seed"
)

type QueryHandler struct {
	useCase app.RunQuery
}

type queryRequest struct {
	Query string `json:"query"`
}

func NewQueryHandler(useCase app.RunQuery) *QueryHandler {
	return &QueryHandler{useCase: useCase}
}

func (h *QueryHandler) Run(c echo.Context) error {
	var req queryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	out, err := h.useCase.Execute(c.Request().Context(), app.RunQueryInput{Query: req.Query})
	if err != nil {
		if errors.Is(err, app.ErrEmptyQuery) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "empty_query",
				Message: "query must not be empty",
			}})
		}

		var sqlErr *app.SQLError
		if errors.As(err, &sqlErr) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "sql_error",
				Message: sqlErr.Message,
			}})
		}

		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to execute query",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
