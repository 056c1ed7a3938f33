package controller

import (
	"net/http"

	"goblog/config"
	"goblog/web/service"

	"github.com/gin-gonic/gin"
)

// ServerController exposes the process status endpoint.
type ServerController struct {
	serverService service.ServerService
}

// NewServerController creates the controller and registers its routes.
func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g.GET("/status", a.status)
}

func (a *ServerController) status(c *gin.Context) {
	jsonObj(c, http.StatusOK, a.serverService.GetStatus(config.GetVersion()))
}
