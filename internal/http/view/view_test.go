package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC) }
	return r
}

func TestRenderer_AllPagesParse(t *testing.T) {
	r := newTestRenderer(t)
	for _, name := range []string{
		PageHome, PageProducts, PageVision, PageContact, PageContactSent, PageLogin,
		PageAdmin, PageAdminProducts, PageEditProduct, PageMessages, PageError,
	} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderer_LayoutFooterAndNav(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageVision, Page{Title: "Vizyon & Misyon"}))
	out := buf.String()
	assert.Contains(t, out, "<title>Vizyon &amp; Misyon</title>")
	assert.Contains(t, out, "© 2026 • 09.03.2026 14:05")
	assert.Contains(t, out, `href="/login"`)
	assert.NotContains(t, out, `href="/logout"`)

	buf.Reset()
	require.NoError(t, r.Render(&buf, PageVision, Page{Title: "x", IsAdmin: true}))
	assert.Contains(t, buf.String(), `href="/logout"`)
}

func TestRenderer_EscapesUserContent(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	err := r.Render(&buf, PageProducts, Page{
		Title: "Ürünler",
		Data: ProductsData{
			Query: `"><script>`,
			Items: []ProductItem{{
				Product: model.Product{ID: 3, Name: "<b>Stand</b>", PhotoURL: "javascript:alert(1)"},
				BuyLink: "https://wa.me/90555?text=Merhaba%20d%C3%BCnya",
			}},
		},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.NotContains(t, out, "<b>Stand</b>")
	assert.Contains(t, out, "&lt;b&gt;Stand&lt;/b&gt;")
	assert.NotContains(t, out, `"><script>`)
	assert.NotContains(t, out, "javascript:alert")
	assert.Contains(t, out, "Satın Al")
	assert.NotContains(t, out, "/admin/edit/3")
}

func TestRenderer_ProductsWithoutBuyLink(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	err := r.Render(&buf, PageProducts, Page{
		Title:   "Ürünler",
		IsAdmin: true,
		Data:    ProductsData{Items: []ProductItem{{Product: model.Product{ID: 3, Name: "Stand"}}}},
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Satın Al")
	assert.Contains(t, buf.String(), "/admin/edit/3")
}

func TestRenderer_EmptyStates(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageProducts, Page{Data: ProductsData{}}))
	assert.Contains(t, buf.String(), "Ürün bulunamadı.")

	buf.Reset()
	require.NoError(t, r.Render(&buf, PageMessages, Page{Data: MessagesData{}}))
	assert.Contains(t, buf.String(), "Mesaj yok.")

	buf.Reset()
	require.NoError(t, r.Render(&buf, PageEditProduct, Page{Data: EditProductData{}}))
	assert.Contains(t, buf.String(), "Ürün bulunamadı.")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	require.Error(t, r.Render(&buf, "nope", Page{}))
	assert.Zero(t, buf.Len())
}
