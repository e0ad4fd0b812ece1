package response

import (
	"encoding/json"
	"time"
)

const (
	DefaultErrorMessage    = "something went wrong, please try again"
	MessageTooManyRequests = "too many requests, slow down"

	DateTimeFormat = "2006-01-02 15:04:05"
)

// Resp is the failure envelope. Success responses are domain DTOs that embed
// their own success flag.
type Resp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewErrorResp returns a failure envelope with message.
func NewErrorResp(message string) Resp {
	return Resp{Success: false, Error: message}
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
