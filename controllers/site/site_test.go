package sitecontroller

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/amandhingra1/charzdev-ev/web"
	"github.com/amandhingra1/charzdev-ev/whatsapp"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seed, err := store.DefaultSeed()
	require.NoError(t, err)
	s := store.New(seed)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", HomePage(s, whatsapp.Contact{Number: whatsapp.DefaultNumber}))
	r.POST("/reviews", SubmitReviewForm(s))
	return r, s
}

func TestHomePage(t *testing.T) {
	r, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Drive the Future")
	assert.Contains(t, body, "CharzDev Urban X")
	assert.Contains(t, body, "https://wa.me/919834828850?text=")
	assert.NotContains(t, body, "Thank you for your review")
}

func TestSubmitReviewFormStaysHidden(t *testing.T) {
	r, s := setup(t)

	form := url.Values{
		"name":       {"Hidden Reviewer"},
		"product_id": {"3"},
		"rating":     {"4"},
		"comment":    {"Waiting for approval"},
	}
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?review=submitted#reviews", w.Header().Get("Location"))

	reviews := s.Reviews()
	require.Len(t, reviews, 4)
	assert.False(t, reviews[3].Approved)
	assert.Equal(t, "CharzDev SUV Elite", reviews[3].ProductName)
	assert.Equal(t, 4, reviews[3].Rating)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?review=submitted", nil))
	assert.Contains(t, w.Body.String(), "Thank you for your review")
	assert.NotContains(t, w.Body.String(), "Hidden Reviewer")
}

func TestSubmitReviewFormWithoutProduct(t *testing.T) {
	r, s := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader("name=Anon&comment=ok"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(httptest.NewRecorder(), req)

	reviews := s.Reviews()
	require.Len(t, reviews, 4)
	assert.Equal(t, models.GeneralProductName, reviews[3].ProductName)
}
