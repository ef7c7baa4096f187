package quote

import (
	"fmt"
	"strings"

	"github.com/tylerdean1/devons-handyman-backend/internal/cart"
)

// Form carries the quote-form fields that end up inside the quote body text.
// The customer's name and email travel separately as top-level request fields.
type Form struct {
	Phone           string
	Address         string
	PreferredDate   string
	PreferredTime   string
	AdditionalNotes string
}

// BuildBody formats the itemized quote text from the cart selection and form
// fields — the same preformatted block a browser submits as the "quote"
// field. Sections with no content are omitted.
func BuildBody(form Form, items []cart.LineItem) string {
	var sections []string

	if len(items) > 0 {
		var b strings.Builder
		b.WriteString("Services requested:")
		for _, it := range items {
			fmt.Fprintf(&b, "\n- %s x%d", it.Service.Name, it.Quantity)
		}
		sections = append(sections, b.String())
	}

	var details []string
	if form.PreferredDate != "" {
		details = append(details, "Preferred date: "+form.PreferredDate)
	}
	if form.PreferredTime != "" {
		details = append(details, "Preferred time: "+form.PreferredTime)
	}
	if form.Phone != "" {
		details = append(details, "Phone: "+form.Phone)
	}
	if form.Address != "" {
		details = append(details, "Address: "+form.Address)
	}
	if len(details) > 0 {
		sections = append(sections, strings.Join(details, "\n"))
	}

	if form.AdditionalNotes != "" {
		sections = append(sections, "Additional notes:\n"+form.AdditionalNotes)
	}

	return strings.Join(sections, "\n\n")
}
