package domain

type Review struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId,omitempty"`
	Comment    string `json:"comment"`
	Rating     int    `json:"rating"` // 1..5
	Author     string `json:"author"`
	Date       string `json:"date"` // YYYY-MM-DD
}
