package dto

type DashboardStatsResponse struct {
	ConversationsToday int64   `json:"conversationsToday"`
	MessagesToday      int64   `json:"messagesToday"`
	TotalMessages      int64   `json:"totalMessages"`
	AiTokens           int64   `json:"aiTokens"`
	TotalInvoiced      float64 `json:"totalInvoiced"`
	TotalPaid          float64 `json:"totalPaid"`
	DealsInProgress    int64   `json:"dealsInProgress"`
}

type AnalyticsConfigResponse struct {
	YandexMetrikaId string `json:"yandexMetrikaId,omitempty"`
	GaMeasurementId string `json:"gaMeasurementId,omitempty"`
}
