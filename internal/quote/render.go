package quote

import (
	"fmt"
	"html"
	"net/url"
)

// Fixed business identity used in email copy. These are the public contact
// details printed in every signature block, not deployment configuration.
const (
	businessName = "Devon’s Handyman Services"
	contactName  = "Devon McCleese"
	contactEmail = "devonmgm@gmail.com"
	contactPhone = "(904) 501-7147"
)

// RenderedEmail is one audience's fully-rendered message, ready for a Sender.
type RenderedEmail struct {
	Subject string
	Text    string // plain-text fallback, user content verbatim
	HTML    string // self-contained card layout, user content escaped
}

// RenderCustomer renders the confirmation sent to the customer's address.
func RenderCustomer(req Request) RenderedEmail {
	name := req.CustomerName
	if name == "" {
		name = "there"
	}

	text := fmt.Sprintf(`Hi %s,

Thanks for reaching out! Here are your details:

%s

We’ll review and get back to you within 24 hours.

Best regards,
%s
Handyman Services
%s
%s`, name, req.Quote, contactName, contactEmail, contactPhone)

	htmlBody := renderCard(cardOpts{
		title:        "Your quote request",
		greetingHTML: fmt.Sprintf("Hi %s,", html.EscapeString(name)),
		leadHTML:     "Thanks for reaching out! Here are your details:",
		quoteText:    req.Quote,
		extraHTML:    "We’ll review and get back to you within 24 hours.",
	})

	return RenderedEmail{
		Subject: "Your quote from Devon's Handyman Services",
		Text:    text,
		HTML:    htmlBody,
	}
}

// RenderOwner renders the notification sent to the business owner. Unlike the
// customer email it includes the customer's contact line and, when present,
// the serialized meta side channel.
func RenderOwner(req Request) RenderedEmail {
	name := req.CustomerName
	if name == "" {
		name = "Not provided"
	}

	metaText := "—"
	if req.MetaJSON != "" {
		metaText = req.MetaJSON
	}

	text := fmt.Sprintf(`New quote request received:

Customer: %s
Email: %s

Quote Details:
%s

Additional Info:
%s`, name, req.CustomerEmail, req.Quote, metaText)

	greeting := fmt.Sprintf(
		`<strong>Customer:</strong> %s<br><strong>Email:</strong> <a href="mailto:%s">%s</a>`,
		html.EscapeString(name),
		url.QueryEscape(req.CustomerEmail),
		html.EscapeString(req.CustomerEmail),
	)

	extra := ""
	if req.MetaJSON != "" {
		extra = fmt.Sprintf(
			`<strong>Additional info:</strong><br><div style="white-space:pre-line;margin-top:6px;">%s</div>`,
			html.EscapeString(req.MetaJSON),
		)
	}

	subjectFrom := req.CustomerName
	if subjectFrom == "" {
		subjectFrom = req.CustomerEmail
	}

	return RenderedEmail{
		Subject: fmt.Sprintf("New Quote Request from %s", subjectFrom),
		Text:    text,
		HTML: renderCard(cardOpts{
			title:        "New quote request",
			greetingHTML: greeting,
			quoteText:    req.Quote,
			extraHTML:    extra,
		}),
	}
}

// cardOpts feeds the shared card template. greetingHTML and extraHTML are
// trusted markup whose user-supplied parts the caller has already escaped;
// quoteText is raw user text and is escaped here.
type cardOpts struct {
	title        string
	greetingHTML string
	leadHTML     string // omitted entirely when empty
	quoteText    string
	extraHTML    string // omitted entirely when empty
}

const cardFont = "-apple-system,BlinkMacSystemFont,Segoe UI,Roboto,Arial,sans-serif"

// renderCard produces the fixed card layout: header band with accent rule,
// title, greeting, optional lead, the bordered quote block (white-space
// pre-line so the quote's line breaks survive), optional extra block, and the
// signature footer.
func renderCard(o cardOpts) string {
	leadRow := ""
	if o.leadHTML != "" {
		leadRow = fmt.Sprintf(`
            <tr>
              <td style="padding:0 24px 16px 24px;font:400 15px/1.65 %s;color:#111827;">
                %s
              </td>
            </tr>`, cardFont, o.leadHTML)
	}

	extraRow := ""
	if o.extraHTML != "" {
		extraRow = fmt.Sprintf(`
            <tr>
              <td style="padding:0 24px 8px 24px;font:400 15px/1.65 %s;color:#111827;">
                %s
              </td>
            </tr>`, cardFont, o.extraHTML)
	}

	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin:0;padding:0;background:#f6f7f9">
    <table role="presentation" width="100%%" cellspacing="0" cellpadding="0" style="background:#f6f7f9">
      <tr>
        <td align="center" style="padding:24px;">
          <table role="presentation" width="100%%" style="max-width:720px;background:#fff;border:1px solid #e5e7eb;border-radius:12px;overflow:hidden;">
            <tr>
              <td style="background:#111827;color:#fff;padding:18px 24px;font:600 18px/1.25 %[1]s;">
                %[2]s
                <div style="height:4px;background:#facc15;margin:12px -24px -18px -24px;"></div>
              </td>
            </tr>
            <tr>
              <td style="padding:24px 24px 8px 24px;font:700 22px/1.3 %[1]s;color:#111827;">
                %[3]s
              </td>
            </tr>
            <tr>
              <td style="padding:0 24px 8px 24px;font:400 15px/1.65 %[1]s;color:#111827;">
                %[4]s
              </td>
            </tr>%[5]s

            <tr>
              <td style="padding:0 24px 16px 24px;">
                <div style="border-left:4px solid #facc15;background:#f9fafb;border:1px solid #e5e7eb;
                            border-left-color:#facc15;border-radius:10px;padding:14px 16px;color:#111827;
                            font:400 15px/1.7 %[1]s;white-space:pre-line;">
%[6]s
                </div>
              </td>
            </tr>%[7]s

            <tr>
              <td style="padding:16px 24px 24px 24px;">
                <hr style="border:none;border-top:1px solid #e5e7eb;margin:0 0 12px 0;">
                <p style="margin:0;color:#6b7280;font:400 13px/1.5 %[1]s;">
                  %[8]s · Handyman Services<br>
                  <a href="mailto:%[9]s" style="color:#2563eb;text-decoration:none;">%[9]s</a> · %[10]s
                </p>
              </td>
            </tr>
          </table>

          <p style="margin:12px 0 0 0;color:#9ca3af;font:400 12px/1.4 %[1]s;">
            Tip: reply to this email to continue the conversation.
          </p>
        </td>
      </tr>
    </table>
  </body>
</html>`,
		cardFont,
		businessName,
		html.EscapeString(o.title),
		o.greetingHTML,
		leadRow,
		html.EscapeString(o.quoteText),
		extraRow,
		contactName,
		contactEmail,
		contactPhone,
	)
}
