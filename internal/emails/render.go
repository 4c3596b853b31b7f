package emails

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/espressolab/storefront-backend/pkg/enums"
	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
	"github.com/espressolab/storefront-backend/pkg/money"
)

const (
	defaultGreeting = "Valued Customer"
	supportEmail    = "support@espressolab.com"
	dateLayout      = "1/2/2006"

	passedColor    = template.CSS("#27ae60")
	attentionColor = template.CSS("#e74c3c")
	passedLabel    = "PASSED"
	attentionLabel = "NEEDS ATTENTION"
	star           = "⭐"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("emails").
		Funcs(template.FuncMap{
			"money": money.Format,
			"stars": Stars,
		}).
		ParseFS(templateFS, "templates/*.html"),
)

// Stars repeats the rating glyph n times; non-positive ratings render nothing.
func Stars(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(star, n)
}

// CustomerMessage returns the body text for an order event. Unknown events yield "".
func CustomerMessage(event enums.OrderEventType, trackingNumber string) string {
	switch event {
	case enums.OrderEventPlaced:
		return "Thank you for your order! We have received your order and will process it shortly."
	case enums.OrderEventPaymentConfirmed:
		return "Your payment has been confirmed. We are now processing your order."
	case enums.OrderEventShipped:
		if trackingNumber == "" {
			trackingNumber = "Will be updated soon"
		}
		return "Your order has been shipped! Tracking number: " + trackingNumber
	}
	return ""
}

// RenderInvoice renders the self-contained invoice document attached to the customer email.
func RenderInvoice(doc OrderDocument) (string, error) {
	return execute("invoice.html", struct {
		OrderDocument
		Date         string
		SupportEmail string
	}{
		OrderDocument: doc,
		Date:          doc.PlacedAt.Format(dateLayout),
		SupportEmail:  supportEmail,
	})
}

// RenderOrderCustomer renders the customer email for the given order event.
func RenderOrderCustomer(doc OrderDocument, event enums.OrderEventType) (string, error) {
	greeting := doc.CustomerName
	if greeting == "" {
		greeting = defaultGreeting
	}
	return execute("order_customer.html", struct {
		OrderDocument
		Greeting string
		Message  string
		OrderURL string
	}{
		OrderDocument: doc,
		Greeting:      greeting,
		Message:       CustomerMessage(event, doc.TrackingNumber),
		OrderURL:      portalURL(doc.PortalBaseURL, "orders", doc.OrderID),
	})
}

// RenderOrderAdmin renders the back-office summary email.
func RenderOrderAdmin(doc OrderDocument) (string, error) {
	return execute("order_admin.html", struct {
		OrderDocument
		AdminURL string
	}{
		OrderDocument: doc,
		AdminURL:      portalURL(doc.PortalBaseURL, "admin", "orders", doc.OrderID),
	})
}

// RenderQCReport renders the inspection result email.
func RenderQCReport(doc QCDocument) (string, error) {
	view := struct {
		QCDocument
		Greeting    string
		StatusColor template.CSS
		StatusText  string
		ReportURL   string
		Closing     string
	}{
		QCDocument:  doc,
		Greeting:    doc.CustomerName,
		StatusColor: attentionColor,
		StatusText:  attentionLabel,
		ReportURL:   portalURL(doc.PortalBaseURL, "qc-reports", doc.ReportID),
		Closing:     "Our team will contact you shortly to discuss the next steps.",
	}
	if view.Greeting == "" {
		view.Greeting = defaultGreeting
	}
	if doc.Passed {
		view.StatusColor = passedColor
		view.StatusText = passedLabel
		view.Closing = "Your order will be shipped shortly. You will receive a tracking number soon."
	}
	return execute("qc_report.html", view)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render "+strings.TrimSuffix(name, ".html"))
	}
	return buf.String(), nil
}
