package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, database *DatabaseHandler, query *QueryHandler, playground *PlaygroundHandler) {
	server.POST("/api/v1/database/setup", database.Setup)
	server.POST("/api/v1/database/reset", database.Reset)
	server.GET("/api/v1/database/info", database.Info)
	server.POST("/api/v1/query", query.Run)
	server.GET("/api/v1/schema", playground.Schema)
	server.GET("/api/v1/exercises", playground.Exercises)
}
