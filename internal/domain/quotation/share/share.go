// Package share renders quotations into plain-text message bodies and
// fire-and-forget deep links for the two sharing channels. Pure
// transformations; no persistence, no delivery tracking.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"borequote/internal/domain/quotation"
)

const dateLayout = "02/01/2006"

// WhatsAppText renders the WhatsApp message body.
// Bold markers use WhatsApp's *asterisk* convention.
func WhatsAppText(q quotation.Quotation, symbol string) string {
	var b strings.Builder
	b.WriteString("*Borwell Quotation*\n\n")
	fmt.Fprintf(&b, "Quotation No: %s\n", q.QuotationNumber)
	fmt.Fprintf(&b, "Customer: %s\n", q.CustomerName)
	fmt.Fprintf(&b, "Date: %s\n\n", q.Date.Format(dateLayout))
	b.WriteString("*Items:*\n")
	writeItems(&b, q, symbol)
	fmt.Fprintf(&b, "\n\n*Total: %s%s*", symbol, q.Total.StringFixed(2))
	return b.String()
}

// WhatsAppLink builds the web-messaging deep link carrying the URL-encoded
// message text.
func WhatsAppLink(q quotation.Quotation, symbol string) string {
	return "https://wa.me/?text=" + url.QueryEscape(WhatsAppText(q, symbol))
}

// EmailMessage renders the mail subject and body.
func EmailMessage(q quotation.Quotation, symbol string) (subject, body string) {
	subject = fmt.Sprintf("Quotation %s - %s", q.QuotationNumber, q.CustomerName)

	var b strings.Builder
	b.WriteString("Quotation Details:\n\n")
	fmt.Fprintf(&b, "Quotation No: %s\n", q.QuotationNumber)
	fmt.Fprintf(&b, "Customer: %s\n", q.CustomerName)
	fmt.Fprintf(&b, "Date: %s\n\n", q.Date.Format(dateLayout))
	b.WriteString("Items:\n")
	writeItems(&b, q, symbol)
	fmt.Fprintf(&b, "\n\nTotal: %s%s", symbol, q.Total.StringFixed(2))
	return subject, b.String()
}

// MailtoLink builds the mail-compose deep link with URL-encoded subject and
// body.
func MailtoLink(q quotation.Quotation, symbol string) string {
	subject, body := EmailMessage(q, symbol)
	return fmt.Sprintf("mailto:?subject=%s&body=%s",
		url.QueryEscape(subject), url.QueryEscape(body))
}

// writeItems renders one line per item in display order. Quantities and unit
// prices print as entered; extended prices round to two decimals like the
// document formatter.
func writeItems(b *strings.Builder, q quotation.Quotation, symbol string) {
	for i, it := range q.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s - Qty: %s @ %s%s = %s%s",
			it.Name, it.Quantity.String(), symbol, it.PricePerUnit.String(),
			symbol, it.ExtendedPrice().StringFixed(2))
	}
}
