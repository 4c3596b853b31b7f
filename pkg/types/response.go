package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// FunctionFailure is the body of every failed notification trigger.
type FunctionFailure struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// OrderNotificationResult is the body of a successful order notification.
type OrderNotificationResult struct {
	Success     bool   `json:"success"`
	OrderNumber string `json:"order_number"`
}

// QCNotificationResult is the body of a successful QC notification.
type QCNotificationResult struct {
	Success  bool   `json:"success"`
	ReportID string `json:"report_id"`
}
