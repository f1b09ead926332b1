package response

// WebhookAck is the body the gateway sees for every accepted delivery.
// The gateway only checks the status code, but the outcome helps when
// reading delivery logs on their dashboard.
type WebhookAck struct {
	Success bool   `json:"success"`
	Outcome string `json:"outcome,omitempty"`
}
