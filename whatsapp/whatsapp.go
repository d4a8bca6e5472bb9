// Package whatsapp builds wa.me deep links for the "Book now" and contact
// buttons. Nothing is sent from the server; the browser opens the link.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/amandhingra1/charzdev-ev/models"
)

const DefaultNumber = "919834828850"

const generalEnquiry = "Hi, I'm interested in CharzDev electric vehicles. Please provide more details about your products."

// Link returns https://wa.me/<digits>[?text=...].
func Link(number, text string) string {
	u := url.URL{Scheme: "https", Host: "wa.me", Path: "/" + Digits(number)}
	if text != "" {
		u.RawQuery = url.Values{"text": {text}}.Encode()
	}
	return u.String()
}

// Digits strips everything but 0-9, so "+91 98765-43210" works as a target.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Contact builds links to one business number.
type Contact struct {
	Number string
}

func (c Contact) ProductEnquiry(p models.Product) string {
	return Link(c.Number, ProductMessage(p))
}

func (c Contact) GeneralEnquiry() string {
	return Link(c.Number, generalEnquiry)
}

// Chat opens a plain conversation, used from the admin order list.
func (c Contact) Chat() string {
	return Link(c.Number, "")
}

// Customer opens a chat with an order's customer rather than the business.
func Customer(phone string) string {
	return Link(phone, "")
}

func ProductMessage(p models.Product) string {
	return fmt.Sprintf("Hi, I'm interested in the %s (%s). Please provide more details.", p.Name, p.Price)
}
