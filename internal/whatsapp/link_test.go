package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
)

func TestBuildBuyLink(t *testing.T) {
	p := model.Product{
		ID:           7,
		Name:         "Stand",
		Category:     "Aksesuar",
		Material:     "PLA",
		Price:        249,
		Stock:        15,
		LeadTimeDays: 2,
	}

	link := BuildBuyLink("905551112233", p)
	require.True(t, strings.HasPrefix(link, "https://wa.me/905551112233?text="), link)
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Ürün: Stand")
	assert.Contains(t, text, "Ürün ID: #7")
	assert.Contains(t, text, "Fiyat: 249 TL")
	assert.Contains(t, text, "Üretim süresi: 2 gün")
	assert.True(t, strings.HasSuffix(text, "Adet: 1\nRenk/Not: "))
	assert.Equal(t, OrderText(p), text)
}

func TestBuildBuyLink_SpecialCharacters(t *testing.T) {
	p := model.Product{ID: 1, Name: "A+B & C #1 %50"}

	u, err := url.Parse(BuildBuyLink("90555", p))
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "Ürün: A+B & C #1 %50\n")
}

func TestBuildBuyLink_NoNumber(t *testing.T) {
	assert.Empty(t, BuildBuyLink("", model.Product{ID: 1}))
	assert.Empty(t, BuildBuyLink("   ", model.Product{ID: 1}))

	l := NewLinker(" ")
	assert.False(t, l.Enabled())
	assert.Empty(t, l.BuyLink(model.Product{ID: 1}))

	l = NewLinker(" 905551112233 ")
	assert.True(t, l.Enabled())
	assert.True(t, strings.HasPrefix(l.BuyLink(model.Product{ID: 1}), "https://wa.me/905551112233?text="))
}
