package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	for _, name := range []string{"home.html", "admin_login.html", "admin_dashboard.html", "head", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestStars(t *testing.T) {
	assert.Equal(t, []bool{true, true, true, true, false}, Stars(4))
	assert.Equal(t, []bool{false, false, false, false, false}, Stars(0))
}
