package models

import "time"

// Variant identifies which suggestion strategy a user was shown.
type Variant string

const (
	VariantDifficulty Variant = "difficulty-based"
	VariantTopic      Variant = "topic-based"
)

func (v Variant) Valid() bool {
	return v == VariantDifficulty || v == VariantTopic
}

// ABEvent records one exposure of a user to a suggestion variant.
type ABEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Variant   Variant   `json:"variant"`
	Page      string    `json:"page"`
	SessionID string    `json:"sessionId"`
	Timestamp time.Time `json:"timestamp"`
}

type VariantResult struct {
	Name           string  `json:"name"`
	Users          int     `json:"users"`
	ConversionRate float64 `json:"conversionRate"`
}

type ABResults struct {
	VariantA VariantResult `json:"variantA"`
	VariantB VariantResult `json:"variantB"`
}
