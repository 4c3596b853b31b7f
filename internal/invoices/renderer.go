package invoices

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/espressolab/storefront-backend/pkg/errors"
)

// Renderer converts the invoice markup into the attachment bytes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// HTMLRenderer attaches the markup itself. It stands in for a PDF converter.
type HTMLRenderer struct{}

func (HTMLRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(html) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "invoice document is empty")
	}
	return []byte(html), nil
}

// Filename is the attachment name for an order's invoice.
func Filename(orderNumber string) string {
	return fmt.Sprintf("invoice-%s.pdf", orderNumber)
}
