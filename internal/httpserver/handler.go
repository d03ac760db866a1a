package httpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-submission-bot/internal/middleware"
	"task-submission-bot/internal/model"
	"task-submission-bot/internal/router"
	"task-submission-bot/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerBotRoutes(srv.gin.Group("/api/v1"))
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.New(srv.l).Trace(), gin.CustomRecovery(srv.recovered))
	srv.gin.NoRoute(srv.notFound)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP server mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerBotRoutes(api *gin.RouterGroup) {
	api.GET("/commands", srv.listCommands)
}

var errInvalidAccess = errors.New("access must be one of anyone, admin, dm")

// listCommands returns the registered chat commands.
// @Summary List commands
// @Description List the chat commands the bot responds to, in match order
// @Tags Bot
// @Produce json
// @Param access query string false "Filter by access level" Enums(anyone, admin, dm)
// @Success 200 {object} response.Resp{data=[]router.CommandInfo}
// @Failure 400 {object} response.Resp
// @Router /api/v1/commands [get]
func (srv *HTTPServer) listCommands(c *gin.Context) {
	cmds := srv.dispatcher.Commands()

	access := c.Query("access")
	switch access {
	case "":
		response.OK(c, cmds)
		return
	case "anyone", "admin", "dm":
	default:
		response.Error(c, errInvalidAccess)
		return
	}

	out := make([]router.CommandInfo, 0, len(cmds))
	for _, cmd := range cmds {
		if hasAccess(cmd.Access, access) {
			out = append(out, cmd)
		}
	}
	response.OK(c, out)
}

// hasAccess matches one level against a comma separated access string.
func hasAccess(levels, want string) bool {
	for _, lvl := range strings.Split(levels, ",") {
		if lvl == want {
			return true
		}
	}
	return false
}

func (srv *HTTPServer) notFound(c *gin.Context) {
	response.NotFound(c, "route not found")
}

func (srv *HTTPServer) recovered(c *gin.Context, rec any) {
	srv.l.Errorf(c.Request.Context(), "internal.httpserver.recovered: %s %s panicked: %v", c.Request.Method, c.Request.URL.Path, rec)
	response.InternalError(c, fmt.Errorf("panic: %v", rec))
	c.Abort()
}
