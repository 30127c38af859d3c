package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	app "github.com/sqlplayground/playground/internal/application/seed"
	"github.com/sqlplayground/playground/internal/infrastructure/repository"
	"github.com/sqlplayground/playground/internal/infrastructure/sqlexec"
	httpecho "github.com/sqlplayground/playground/internal/interfaces/http/echo"
)

func NewHTTPServer(pool *pgxpool.Pool, db *gorm.DB, logger *zap.Logger) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("1M"))

	executor := sqlexec.New(pool)
	runRepo := repository.NewSeedRunRepository(db)

	setup := app.NewSetupDatabase(executor, runRepo, logger)
	info := app.NewGetDatabaseInfo(executor)
	query := app.NewRunQuery(executor)

	databaseHandler := httpecho.NewDatabaseHandler(setup, info)
	queryHandler := httpecho.NewQueryHandler(query)
	playgroundHandler := httpecho.NewPlaygroundHandler()

	httpecho.RegisterRoutes(server, databaseHandler, queryHandler, playgroundHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
