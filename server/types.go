package server

type ErrorResponse struct {
	Error string `json:"error"`
}
