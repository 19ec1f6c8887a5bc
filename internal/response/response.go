package response

import "github.com/labstack/echo/v4"

// Envelope is the fixed JSON wrapper returned by every endpoint. Data is
// always serialized, null when an operation has nothing to return.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// JSON writes a response envelope with the given status.
func JSON(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}
