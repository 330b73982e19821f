// Package whatsapp builds click-to-chat links that open a prefilled order
// message to the shop's WhatsApp number.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/model"
)

const baseURL = "https://wa.me/"

// QueryEscape writes spaces as '+', wa.me expects %20. Slashes stay readable.
var textEscaper = strings.NewReplacer("+", "%20", "%2F", "/")

// BuildBuyLink returns the order link for p, or "" when number is blank.
func BuildBuyLink(number string, p model.Product) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return ""
	}
	return baseURL + number + "?text=" + textEscaper.Replace(url.QueryEscape(OrderText(p)))
}

// OrderText is the prefilled message for a single unit of p.
func OrderText(p model.Product) string {
	var b strings.Builder
	b.WriteString("Merhaba, sipariş vermek istiyorum.\n\n")
	fmt.Fprintf(&b, "Ürün: %s\n", p.Name)
	fmt.Fprintf(&b, "Kategori: %s\n", p.Category)
	fmt.Fprintf(&b, "Malzeme: %s\n", p.Material)
	fmt.Fprintf(&b, "Fiyat: %d TL\n", p.Price)
	fmt.Fprintf(&b, "Stok: %d\n", p.Stock)
	fmt.Fprintf(&b, "Üretim süresi: %d gün\n", p.LeadTimeDays)
	fmt.Fprintf(&b, "Ürün ID: #%d\n\n", p.ID)
	b.WriteString("Adet: 1\n")
	b.WriteString("Renk/Not: ")
	return b.String()
}

// Linker binds the configured shop number.
type Linker struct {
	number string
}

func NewLinker(number string) Linker {
	return Linker{number: strings.TrimSpace(number)}
}

// Enabled reports whether a number is configured.
func (l Linker) Enabled() bool {
	return l.number != ""
}

func (l Linker) BuyLink(p model.Product) string {
	return BuildBuyLink(l.number, p)
}
