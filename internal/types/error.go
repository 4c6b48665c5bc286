package types

import "fmt"

// CustomError carries an HTTP status code and a machine-readable type tag.
// Validation failures surface the first violated rule through Message.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
