package dto

type UpdateSettingsRequest map[string]string

type UpdateSettingRequest struct {
	Value string `json:"value" validate:"required"`
}

type PublicSettingsResponse struct {
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	WhatsappNumber  string `json:"whatsappNumber,omitempty"`
	YandexMetrikaId string `json:"yandexMetrikaId,omitempty"`
	GaMeasurementId string `json:"gaMeasurementId,omitempty"`
}
