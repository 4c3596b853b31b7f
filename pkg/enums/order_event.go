package enums

// OrderEventType is the lifecycle event a caller asks the order notifier to announce.
// Values outside the known set are accepted and produce an empty customer message.
type OrderEventType string

const (
	OrderEventPlaced           OrderEventType = "order_placed"
	OrderEventPaymentConfirmed OrderEventType = "payment_confirmed"
	OrderEventShipped          OrderEventType = "order_shipped"
)

func (o OrderEventType) IsKnown() bool {
	switch o {
	case OrderEventPlaced, OrderEventPaymentConfirmed, OrderEventShipped:
		return true
	}
	return false
}
