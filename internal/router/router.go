package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"citizen_registry/internal/handler"
	"citizen_registry/internal/middleware"
	"citizen_registry/internal/utils"
)

// Handlers groups the resource handlers wired into the engine
type Handlers struct {
	Users     *handler.UserHandler
	Locations *handler.LocationHandler
	Citizens  *handler.CitizenHandler
}

// New builds the gin engine with the full route table. Main and the handler
// tests share this so the middleware chains cannot drift.
func New(h Handlers, jwtUtil *utils.JWTUtil, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	// Undefined verbs on known paths answer 405 instead of 404
	r.HandleMethodNotAllowed = true

	r.Use(cors.Default())
	r.Use(middleware.RequestID())
	for _, mw := range extra {
		r.Use(mw)
	}

	authMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware()

	api := r.Group("/api/v1")
	h.Users.RegisterUserRoutes(api, authMW)
	h.Locations.RegisterLocationRoutes(api, authMW, adminMW)
	h.Citizens.RegisterCitizenRoutes(api, authMW)

	return r
}
