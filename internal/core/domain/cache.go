package domain

// CachedRewrite is a memoized rule result. Variants is the metadata after the
// rule ran; it is only meaningful when Applied is true.
type CachedRewrite struct {
	Key       string    `json:"key,omitzero"`
	Component string    `json:"component,omitzero"`
	Rule      string    `json:"rule,omitzero"`
	Applied   bool      `json:"applied,omitzero"`
	Floor     int       `json:"floor,omitzero"`
	Variant   string    `json:"variant,omitzero"`
	Variants  []Variant `json:"variants,omitzero"`
}
