package dto

type SetWebhookRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type WebhookInfoResponse struct {
	URL                  string `json:"url"`
	PendingUpdateCount   int    `json:"pendingUpdateCount"`
	LastErrorMessage     string `json:"lastErrorMessage,omitempty"`
	MaxConnections       int    `json:"maxConnections,omitempty"`
	IPAddress            string `json:"ipAddress,omitempty"`
	HasCustomCertificate bool   `json:"hasCustomCertificate"`
}

type PublishAuditMessage struct {
	EventType string                 `json:"eventType"`
	Details   map[string]interface{} `json:"details"`
}
