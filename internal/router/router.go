package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/tasklist/api/handler"
)

type Handlers struct {
	Task    *apiHandler.TaskHandler
	Report  *apiHandler.ReportHandler
	Health  *apiHandler.HealthHandler
	Metrics fasthttp.RequestHandler
}

// New wires every route. limit guards the /api routes only.
func New(handlers Handlers, limit func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	if limit == nil {
		limit = func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	}

	r := router.New()
	r.SaveMatchedRoutePath = true

	if handlers.Health != nil {
		r.GET("/health", handlers.Health.Check)
	}
	if handlers.Metrics != nil {
		r.GET("/metrics", handlers.Metrics)
	}

	const taskPath = apiHandler.TasksPath + "/{id}"
	r.GET(apiHandler.TasksPath, limit(handlers.Task.ListTasks))
	r.POST(apiHandler.TasksPath, limit(handlers.Task.CreateTask))
	r.GET(taskPath, limit(handlers.Task.GetTask))
	r.PUT(taskPath, limit(handlers.Task.UpdateTask))
	r.DELETE(taskPath, limit(handlers.Task.DeleteTask))

	if handlers.Report != nil {
		r.GET("/api/reports/tasks.pdf", limit(handlers.Report.TasksPDF))
	}

	return r
}
