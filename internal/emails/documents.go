package emails

import (
	"fmt"
	"strings"
	"time"

	"github.com/espressolab/storefront-backend/pkg/db/models"
	"github.com/espressolab/storefront-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// Address is a printable shipping destination.
type Address struct {
	FullName   string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// CityLine renders "city, state postal" and drops empty parts.
func (a Address) CityLine() string {
	region := strings.TrimSpace(strings.Join(nonEmpty(a.State, a.PostalCode), " "))
	if region == "" {
		return a.City
	}
	if a.City == "" {
		return region
	}
	return a.City + ", " + region
}

// LineItem is one invoiced product row.
type LineItem struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// OrderDocument is the data record behind the invoice, customer, and admin documents.
type OrderDocument struct {
	OrderID        string
	OrderNumber    string
	PlacedAt       time.Time
	Status         string
	PaymentMethod  string
	CustomerName   string
	CustomerEmail  string
	TrackingNumber string
	Items          []LineItem
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	ShippingFee    decimal.Decimal
	TotalAmount    decimal.Decimal
	Shipping       Address
	PortalBaseURL  string
}

// Answer is one rendered QC checklist response.
type Answer struct {
	Question string
	Rating   int
	Value    string
	Notes    string
}

// Display prefers the structured value, then the notes, then "N/A".
func (a Answer) Display() string {
	if a.Value != "" {
		return a.Value
	}
	if a.Notes != "" {
		return a.Notes
	}
	return "N/A"
}

// QCDocument is the data record behind the QC report email.
type QCDocument struct {
	ReportID      string
	OrderNumber   string
	CustomerName  string
	Passed        bool
	OverallRating int
	OverallNotes  string
	Answers       []Answer
	ImageURLs     []string
	PortalBaseURL string
}

// TotalsConsistent reports whether the stored total equals subtotal plus tax plus shipping at cent precision.
func (d OrderDocument) TotalsConsistent() bool {
	return money.Equal(d.TotalAmount, money.Sum(d.Subtotal, d.Tax, d.ShippingFee))
}

// NewOrderDocument flattens a loaded order (with Profile and Items preloaded).
func NewOrderDocument(order *models.Order, portalBaseURL string) OrderDocument {
	if order == nil {
		return OrderDocument{PortalBaseURL: portalBaseURL}
	}
	doc := OrderDocument{
		OrderID:        order.ID.String(),
		OrderNumber:    order.OrderNumber,
		PlacedAt:       order.CreatedAt,
		Status:         order.Status,
		PaymentMethod:  order.PaymentMethod,
		TrackingNumber: deref(order.TrackingNumber),
		Subtotal:       order.Subtotal,
		Tax:            order.Tax,
		ShippingFee:    order.ShippingFee,
		TotalAmount:    order.TotalAmount,
		Shipping: Address{
			FullName:   order.ShippingFullName,
			Line1:      order.ShippingAddressLine1,
			Line2:      deref(order.ShippingAddressLine2),
			City:       order.ShippingCity,
			State:      deref(order.ShippingState),
			PostalCode: deref(order.ShippingPostalCode),
			Country:    order.ShippingCountry,
			Phone:      order.ShippingPhone,
		},
		PortalBaseURL: portalBaseURL,
	}
	if order.Profile != nil {
		doc.CustomerName = order.Profile.DisplayName()
		doc.CustomerEmail = order.Profile.Email
	}
	for _, item := range order.Items {
		doc.Items = append(doc.Items, LineItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}
	return doc
}

// NewQCDocument flattens a loaded report (with Appointment.Profile, Order and Answers preloaded).
func NewQCDocument(report *models.QCReport, portalBaseURL string) QCDocument {
	if report == nil {
		return QCDocument{PortalBaseURL: portalBaseURL}
	}
	doc := QCDocument{
		ReportID:      report.ID.String(),
		Passed:        report.Passed,
		OverallNotes:  deref(report.OverallNotes),
		ImageURLs:     []string(report.ImageURLs),
		PortalBaseURL: portalBaseURL,
	}
	if report.OverallRating != nil {
		doc.OverallRating = *report.OverallRating
	}
	if report.Order != nil {
		doc.OrderNumber = report.Order.OrderNumber
	}
	if report.Appointment != nil && report.Appointment.Profile != nil {
		doc.CustomerName = report.Appointment.Profile.DisplayName()
	}
	for _, answer := range report.Answers {
		rendered := Answer{
			Question: answer.QuestionText,
			Value:    deref(answer.AnswerValue),
			Notes:    deref(answer.Notes),
		}
		if answer.Rating != nil {
			rendered.Rating = *answer.Rating
		}
		doc.Answers = append(doc.Answers, rendered)
	}
	return doc
}

func portalURL(base string, segments ...string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.Join(segments, "/"))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
