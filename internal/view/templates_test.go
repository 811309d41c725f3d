package view

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestRenderNotFoundPage(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	err = engine.Render(rr, "pages/not_found.html", TemplateData{
		Title:    "Not found",
		AppTitle: "Systemic Altruism",
		Nav:      []NavLink{{Icon: "🏠", Label: "Dashboard", Href: "/", Active: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Systemic Altruism")
	assert.Contains(t, rr.Body.String(), `class="nav-item active"`)
}

func TestRenderNilEngine(t *testing.T) {
	var engine *Engine
	assert.Error(t, engine.Render(httptest.NewRecorder(), "x", TemplateData{}))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12,543", FormatNumber(12543))
	assert.Equal(t, "621,212.12", FormatNumber(621212.12))
	assert.Equal(t, "-1,080", FormatNumber(-1080))
	assert.Equal(t, "0", FormatNumber(0))
}
