package request

// ServiceCreateRequest creates a catalog entry. The code is assigned by the server.
type ServiceCreateRequest struct {
	ServiceName  string   `json:"service_name" binding:"required"`
	ServicePrice *float64 `json:"service_price" binding:"required"`
}
