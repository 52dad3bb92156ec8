package form

// MaskFile represents fields of a mask record that clients may change.
type MaskFile struct {
	MaskReview  bool `json:"Review"`
	MaskInvalid bool `json:"Invalid"`
}
