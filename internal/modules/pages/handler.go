package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the static home/about/help pages and the legacy root
// redirects. No data access.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Title": "Home Page",
	})
}

func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", gin.H{
		"Title": "About This Project",
	})
}

func (h *Handler) Help(c *gin.Context) {
	c.HTML(http.StatusOK, "help.tmpl", gin.H{
		"Title": "Help & Instructions",
	})
}

func redirectTo(target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Redirect(http.StatusFound, target)
	}
}
