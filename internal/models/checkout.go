package models

// MusicConfig is the customization a customer attaches to a purchase.
type MusicConfig struct {
	Style   string `json:"style" validate:"required,music_style"`
	Message string `json:"message" validate:"required,max=2000"`
}

type CheckoutSessionRequest struct {
	ProductID string      `json:"productId" validate:"required"`
	Config    MusicConfig `json:"config"`
}

// CheckoutSession carries the opaque session handle back to the browser,
// which hands it to Stripe's redirect call.
type CheckoutSession struct {
	ID string `json:"id"`
}
