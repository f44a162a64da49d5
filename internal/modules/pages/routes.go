package pages

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the equipment-prefixed pages and the legacy root
// paths, which redirect to their /equipment equivalents.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	eq := r.Group("/equipment")
	eq.GET("", h.Home)
	eq.GET("/about", h.About)
	eq.GET("/help", h.Help)

	r.GET("/", redirectTo("/equipment"))
	r.GET("/about", redirectTo("/equipment/about"))
	r.GET("/help", redirectTo("/equipment/help"))
}
