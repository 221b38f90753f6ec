package submit_booking

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	BookingID int64 `json:"bookingId"`
	Total     int   `json:"total"`
}
