package handler

import (
	"net/http"

	"Immob/config"

	"github.com/gin-gonic/gin"
)

// Web serves the server-rendered pages. The pages are thin shells; the
// frontend JavaScript talks to the /api routes.
type Web struct {
	Config *config.Config
}

func (h *Web) RegisterRouter(r gin.IRouter) {
	r.GET("/", h.page("index.html", "Accueil"))
	r.GET("/login", h.page("login.html", "Connexion"))
	r.GET("/register", h.page("register.html", "Inscription"))
	r.GET("/properties", h.page("properties.html", "Propriétés"))
	r.GET("/properties/:id", h.page("property_detail.html", "Détail de la propriété"))
	r.GET("/profile", h.page("profile.html", "Mon profil"))
	r.GET("/favorites", h.page("favorites.html", "Mes favoris"))
	r.GET("/reviews", h.page("reviews.html", "Avis"))
	r.GET("/contact", h.page("contact.html", "Contact"))
}

func (h *Web) page(template, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{
			"title":        title,
			"frontend_url": h.Config.App.FrontendURL,
		})
	}
}
