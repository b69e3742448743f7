package errors

import "net/http"

// Messages carried in the envelope for each status the API emits.
const (
	MsgBadRequest          = "Bad Request"
	MsgNotFound            = "Resource Not Found"
	MsgMethodNotAllowed    = "Method Not Allowed"
	MsgUnprocessable       = "Unprocessable"
	MsgInternalServerError = "Internal Server Error"
)

// MessageFor returns the envelope message for status, falling back to the HTTP reason phrase.
func MessageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	case http.StatusInternalServerError:
		return MsgInternalServerError
	default:
		return http.StatusText(status)
	}
}
