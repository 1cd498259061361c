package handler

type createBookingRequest struct {
	RoomType string `json:"room_type" validate:"required"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   int    `json:"guests"    validate:"required,gte=1"`
	Requests string `json:"requests"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled completed"`
}
