package toggle_discard

// ToggleDiscardRequest HTTP request model
type ToggleDiscardRequest struct {
	Category string `json:"category"`
}
