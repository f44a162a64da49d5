package inventory

import (
	"github.com/gin-gonic/gin"

	"invtrack/internal/pkg/render"
)

// RegisterRoutes mounts the equipment CRUD and search surface under
// /equipment. Verbs a route does not implement answer 403 plain text.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	eq := r.Group("/equipment")

	eq.GET("/create", h.CreateForm)
	eq.POST("/create", h.Create)
	eq.PUT("/create", render.NotSupported)
	eq.DELETE("/create", render.NotSupported)

	eq.GET("/delete", h.DeleteSelect)
	eq.DELETE("/delete", h.Delete)
	eq.POST("/delete", render.NotSupported)
	eq.PUT("/delete", render.NotSupported)

	eq.GET("/update", h.UpdateSelect)
	eq.POST("/update", h.UpdateSelected)
	eq.PUT("/update", render.NotSupported)
	eq.DELETE("/update", render.NotSupported)

	eq.GET("/search/room", h.SearchRoomForm)
	eq.POST("/search/room", h.SearchRoom)
	eq.PUT("/search/room", render.NotSupported)
	eq.DELETE("/search/room", render.NotSupported)

	eq.GET("/search/name", h.SearchNameForm)
	eq.POST("/search/name", h.SearchName)
	eq.PUT("/search/name", render.NotSupported)
	eq.DELETE("/search/name", render.NotSupported)

	eq.GET("/search/type", h.SearchTypeForm)
	eq.POST("/search/type", h.SearchType)
	eq.PUT("/search/type", render.NotSupported)
	eq.DELETE("/search/type", render.NotSupported)

	eq.GET("/all", h.All)
	eq.POST("/all", render.NotSupported)
	eq.PUT("/all", render.NotSupported)
	eq.DELETE("/all", render.NotSupported)

	eq.GET("/:id/delete", h.DeleteByIDForm)
	eq.DELETE("/:id/delete", h.DeleteByID)
	eq.POST("/:id/delete", render.NotSupported)
	eq.PUT("/:id/delete", render.NotSupported)

	eq.GET("/:id/update", h.UpdateByIDForm)
	eq.PUT("/:id/update", h.UpdateByID)
	eq.POST("/:id/update", render.NotSupported)
	eq.DELETE("/:id/update", render.NotSupported)

	eq.GET("/:id", h.Detail)
	eq.POST("/:id", render.NotSupported)
	eq.PUT("/:id", render.NotSupported)
	eq.DELETE("/:id", render.NotSupported)
}
