package routes

import (
	"time"

	"github.com/amandhingra1/charzdev-ev/auth"
	eventcontroller "github.com/amandhingra1/charzdev-ev/controllers/events"
	"github.com/amandhingra1/charzdev-ev/middleware"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/amandhingra1/charzdev-ev/web"
	"github.com/amandhingra1/charzdev-ev/whatsapp"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the handlers need.
type Deps struct {
	Store   *store.Store
	Gate    *auth.Gate
	Cookies auth.CookieConfig
	Contact whatsapp.Contact
	Hub     *eventcontroller.Hub
}

// NewEngine builds the gin engine with middleware, templates and every
// route registered.
func NewEngine(d Deps, logger *zap.Logger, origins []string) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), CORS(origins))
	r.SetHTMLTemplate(tmpl)

	SetupRoutes(r, d)
	return r, nil
}

// SetupRoutes is the single entry-point that wires up the public site, the
// admin panel and the JSON API.
func SetupRoutes(r *gin.Engine, d Deps) {
	// 1️⃣ Public pages
	SetupPublicRoutes(r, d)

	// 2️⃣ Admin panel (session cookie)
	SetupAdminRoutes(r, d)

	// 3️⃣ JSON API
	SetupAPIRoutes(r, d)
}

// CORS returns the API's CORS middleware. Credentials are only allowed
// with an explicit origin list, since browsers refuse them with "*".
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}
