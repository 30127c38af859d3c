package echo

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	app "github.com/sqlplayground/playground/internal/application/seed"
	domain "github.com/sqlplayground/playground/internal/domain/seed"
)

type DatabaseHandler struct {
	setup app.SetupDatabase
	info  app.GetDatabaseInfo
}

type setupRequest struct {
	Config *app.ConfigRequest `json:"config"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func NewDatabaseHandler(setup app.SetupDatabase, info app.GetDatabaseInfo) *DatabaseHandler {
	return &DatabaseHandler{setup: setup, info: info}
}

func (h *DatabaseHandler) Setup(c echo.Context) error {
	var req setupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	in := app.SetupDatabaseInput{Trigger: "setup"}
	if req.Config != nil {
		cfg, err := req.Config.ToConfig(time.Now())
		if err != nil {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_config",
				Message: err.Error(),
			}})
		}
		in.Config = &cfg
	}

	return h.run(c, in)
}

// Reset is the deprecated alias for Setup with the default configuration.
func (h *DatabaseHandler) Reset(c echo.Context) error {
	return h.run(c, app.SetupDatabaseInput{Trigger: "reset"})
}

func (h *DatabaseHandler) run(c echo.Context, in app.SetupDatabaseInput) error {
	out, err := h.setup.Execute(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfig) {
			return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
				Code:    "invalid_config",
				Message: err.Error(),
			}})
		}
		if errors.Is(err, app.ErrSetupInProgress) {
			return c.JSON(http.StatusConflict, apiResponse{Error: &errorBody{
				Code:    "setup_in_progress",
				Message: "another database setup is already running",
			}})
		}
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "setup_failed",
			Message: err.Error(),
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *DatabaseHandler) Info(c echo.Context) error {
	out, err := h.info.Execute(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to read database info",
		}})
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
