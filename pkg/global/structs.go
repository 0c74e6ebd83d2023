package global

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Message string `json:"message"`
}

func Error(message string) ErrorBody {
	return ErrorBody{Message: message}
}
