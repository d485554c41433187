package analyze

import "fmt"

// DefaultDetail is shown when the collaborator failed without a usable
// message (network error, malformed error body).
const DefaultDetail = "분석에 실패했습니다. 잠시 후 다시 시도해주세요."

// RequestError is any failed analysis attempt: a transport failure, a
// non-200 status, or a payload that failed schema validation. Detail is the
// user-facing message; Err keeps the cause for the log.
type RequestError struct {
	Status int // 0 when the request never produced a response
	Detail string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("analyze request failed (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("analyze request failed: %s", e.Detail)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Message returns the text to surface to the learner.
func (e *RequestError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return DefaultDetail
}
