package echo_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	app "github.com/sqlplayground/playground/internal/application/seed"
	httpecho "github.com/sqlplayground/playground/internal/interfaces/http/echo"
)

type fakeQueryUseCase struct {
	out app.RunQueryOutput
	err error

	gotQuery string
}

func (f *fakeQueryUseCase) Execute(ctx context.Context, in app.RunQueryInput) (app.RunQueryOutput, error) {
	f.gotQuery = in.Query
	if f.err != nil {
		return app.RunQueryOutput{}, f.err
	}
	return f.out, nil
}

func newQueryServer(query *fakeQueryUseCase) *echo.Echo {
	e := echo.New()
	httpecho.RegisterRoutes(e,
		httpecho.NewDatabaseHandler(&fakeSetupUseCase{}, &fakeInfoUseCase{}),
		httpecho.NewQueryHandler(query),
		httpecho.NewPlaygroundHandler())
	return e
}

func postQuery(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestQueryHandlerSuccess(t *testing.T) {
	t.Parallel()

	query := &fakeQueryUseCase{out: app.RunQueryOutput{Rows: []app.Row{
		{"name": "France"},
		{"name": "Japan"},
	}}}
	e := newQueryServer(query)

	rec := postQuery(e, `{"query": "SELECT name FROM countries"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if query.gotQuery != "SELECT name FROM countries" {
		t.Fatalf("unexpected query: %s", query.gotQuery)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	rows := got["data"].(map[string]any)["rows"].([]any)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestQueryHandlerEmptyQuery(t *testing.T) {
	t.Parallel()

	e := newQueryServer(&fakeQueryUseCase{err: app.ErrEmptyQuery})

	rec := postQuery(e, `{"query": ""}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec.Body.Bytes()); code != "empty_query" {
		t.Fatalf("unexpected error code: %s", code)
	}
}

func TestQueryHandlerSQLError(t *testing.T) {
	t.Parallel()

	e := newQueryServer(&fakeQueryUseCase{err: &app.SQLError{
		Message: `relation "cuntries" does not exist`,
		Detail:  "42P01",
	}})

	rec := postQuery(e, `{"query": "SELECT * FROM cuntries"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec.Body.Bytes()); code != "sql_error" {
		t.Fatalf("unexpected error code: %s", code)
	}
	if !strings.Contains(rec.Body.String(), "cuntries") {
		t.Fatalf("database message not surfaced: %s", rec.Body.String())
	}
}

func TestQueryHandlerInternalError(t *testing.T) {
	t.Parallel()

	e := newQueryServer(&fakeQueryUseCase{err: errors.New("connection refused")})

	rec := postQuery(e, `{"query": "SELECT 1"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestQueryHandlerMalformedBody(t *testing.T) {
	t.Parallel()

	e := newQueryServer(&fakeQueryUseCase{})

	rec := postQuery(e, `{"query":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
