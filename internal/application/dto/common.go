package dto

// BaseResponse envoltura estándar de la API, misma forma que usan los
// servicios Customer y Account: {status, message, data}.
type BaseResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
