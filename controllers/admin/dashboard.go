package adminController

import (
	"errors"
	"net/http"

	"github.com/amandhingra1/charzdev-ev/auth"
	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/amandhingra1/charzdev-ev/whatsapp"
	"github.com/gin-gonic/gin"
)

type tab struct {
	ID    string
	Label string
}

var tabs = []tab{
	{ID: "products", Label: "Products"},
	{ID: "orders", Label: "Orders"},
	{ID: "reviews", Label: "Reviews"},
	{ID: "settings", Label: "Site Settings"},
}

type orderRow struct {
	models.Order
	ChatURL string
}

type dashboardView struct {
	Tab         string
	Tabs        []tab
	Stats       store.Stats
	Products    []models.Product
	Reviews     []models.Review
	Orders      []orderRow
	Statuses    []models.OrderStatus
	Content     models.SiteContent
	EditProduct *models.Product
	EditReview  *models.Review
}

type loginView struct {
	Username string
	Error    string
}

func activeTab(c *gin.Context) string {
	want := c.Query("tab")
	for _, t := range tabs {
		if t.ID == want {
			return want
		}
	}
	return tabs[0].ID
}

func buildDashboard(c *gin.Context, s *store.Store) dashboardView {
	view := dashboardView{
		Tab:      activeTab(c),
		Tabs:     tabs,
		Stats:    s.Stats(),
		Products: s.Products(),
		Reviews:  s.Reviews(),
		Statuses: models.OrderStatuses,
		Content:  s.SiteContent(),
	}
	for _, o := range s.Orders() {
		view.Orders = append(view.Orders, orderRow{Order: o, ChatURL: whatsapp.Customer(o.Phone)})
	}

	switch view.Tab {
	case "products":
		if p, ok := s.Product(c.Query("edit")); ok {
			view.EditProduct = &p
		} else if c.Query("new") != "" {
			view.EditProduct = &models.Product{}
		}
	case "reviews":
		if r, ok := s.Review(c.Query("edit")); ok {
			view.EditReview = &r
		} else if c.Query("new") != "" {
			view.EditReview = &models.Review{Rating: models.MaxRating, Approved: true}
		}
	}
	return view
}

// AdminPage serves /admin: the login form unless the caller holds a live
// session, the dashboard otherwise. An expired session just shows the form.
func AdminPage(s *store.Store, gate *auth.Gate, cookies auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gate.Check(cookies.Store(c)) != auth.LoggedIn {
			c.HTML(http.StatusOK, "admin_login.html", loginView{})
			return
		}
		c.HTML(http.StatusOK, "admin_dashboard.html", buildDashboard(c, s))
	}
}

// LoginForm handles the login form post.
func LoginForm(gate *auth.Gate, cookies auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		_, err := gate.Login(c.Request.Context(), cookies.Store(c), username, password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "admin_login.html", loginView{Username: username, Error: "Invalid username or password"})
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.HTML(http.StatusInternalServerError, "admin_login.html", loginView{Username: username, Error: "Login failed, please try again"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin")
	}
}

// LogoutForm clears the session and goes back to the public site.
func LogoutForm(gate *auth.Gate, cookies auth.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		gate.Logout(cookies.Store(c))
		c.Redirect(http.StatusSeeOther, "/")
	}
}
