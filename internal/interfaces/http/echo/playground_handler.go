package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sqlplayground/playground/internal/domain/playground"
)

// PlaygroundHandler serves the static assets the editor UI needs: the schema
// browser description and the practice exercise list.
type PlaygroundHandler struct{}

func NewPlaygroundHandler() *PlaygroundHandler {
	return &PlaygroundHandler{}
}

func (h *PlaygroundHandler) Schema(c echo.Context) error {
	return c.JSON(http.StatusOK, apiResponse{Data: playground.Schema})
}

func (h *PlaygroundHandler) Exercises(c echo.Context) error {
	return c.JSON(http.StatusOK, apiResponse{Data: playground.Exercises})
}
