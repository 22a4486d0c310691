package models

// ApiResponse is the envelope for single-booking and error replies. List and
// stats replies carry their own shapes so an empty store still serializes as
// an empty array rather than being omitted.
type ApiResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Booking *Booking          `json:"booking,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type ListResponse struct {
	Success  bool       `json:"success"`
	Bookings []*Booking `json:"bookings"`
}

type StatsResponse struct {
	Success bool   `json:"success"`
	Stats   *Stats `json:"stats"`
}

func BookingResponse(booking *Booking, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
		Booking: booking,
	}
}

func MessageResponse(message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: err,
	}
}

func ValidationErrorResponse(ve *ValidationError) ApiResponse {
	return ApiResponse{
		Success: false,
		Message: ve.Error(),
		Errors:  ve.Fields,
	}
}
