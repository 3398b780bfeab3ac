package api

import (
	"net/http"

	"github.com/beka-birhanu/vinom-forager/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its dependencies,
// including controllers and shared middleware.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	middlewares []gin.HandlerFunc
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Middlewares []gin.HandlerFunc // Applied to every route, in order
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		middlewares: config.Middlewares,
	}
}

// Handler builds the gin engine with every controller registered under the base URL.
func (r *Router) Handler() *gin.Engine {
	router := gin.Default()
	router.Use(r.middlewares...)

	api := router.Group(r.baseURL)
	{
		api.GET("/", liveness)
		for _, c := range r.controllers {
			c.Register(api)
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Handler().Run(r.addr)
}

func liveness(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Server is live."})
}
