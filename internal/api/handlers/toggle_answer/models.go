package toggle_answer

// ToggleAnswerRequest HTTP request model
type ToggleAnswerRequest struct {
	Option string `json:"option"`
}
