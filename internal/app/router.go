package app

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invtrack/internal/middleware"
	"invtrack/internal/modules/inventory"
	"invtrack/internal/modules/pages"
	"invtrack/internal/repository"
)

// NewRouter wires the repositories, modules, middleware, and templates into
// the HTTP handler. The returned handler includes the method override
// wrapper, so it is what both the server and the tests should serve.
func NewRouter(db *gorm.DB, templatesDir string) http.Handler {
	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorRenderer())
	r.LoadHTMLGlob(filepath.Join(templatesDir, "*.tmpl"))

	equipmentRepo := repository.NewEquipmentRepository(db)
	roomRepo := repository.NewRoomRepository(db)

	pages.NewHandler().RegisterRoutes(r)
	inventory.NewHandler(equipmentRepo, roomRepo).RegisterRoutes(r)

	return middleware.MethodOverride(r)
}
