package entity

type PreferenceResponse struct {
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

type UpdateLanguageRequest struct {
	Language string `json:"language" validate:"required,language"`
}

type UpdateNotificationsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type TranslationResponse struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Text     string `json:"text"`
}
