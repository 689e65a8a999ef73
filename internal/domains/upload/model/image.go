package model

// Image is a stored image as returned to the admin panel.
type Image struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

const DefaultFolder = "general"
