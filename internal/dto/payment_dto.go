package dto

type PaymentIntentRequest struct {
	Price FlexFloat `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	SessionID string    `json:"sessionId"`
	Amount    FlexFloat `json:"amount"`
	IntentID  string    `json:"intentId"`
}

type AdminOverviewResponse struct {
	Users        int64   `json:"users"`
	Sessions     int64   `json:"sessions"`
	Bookings     int64   `json:"bookings"`
	Materials    int64   `json:"materials"`
	TotalRevenue float64 `json:"totalRevenue"`
}
