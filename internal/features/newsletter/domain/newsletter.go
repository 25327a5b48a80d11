package domain

// SubscribeRequest is the request body for POST /api/subscribe.
type SubscribeRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Source string `json:"source"`
}

// Subscription is the confirmed (or stubbed, when ConvertKit is not
// configured) newsletter subscription.
type Subscription struct {
	ID              int64  `json:"id"`
	State           string `json:"state"`
	SubscriberEmail string `json:"subscriber_email"`
}

// ContactRequest is the request body for POST /api/contact. Website is a
// honeypot field: legitimate submissions leave it empty.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=3"`
	Message string `json:"message" binding:"required,min=10"`
	Website string `json:"website"`
}
