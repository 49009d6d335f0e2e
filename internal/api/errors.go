package api

import "fmt"

// AuthError is returned when GitHub rejects the token (HTTP 401/403).
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("GitHub rejected the token (HTTP %d): ensure it has the 'codespace' permission and is authorized for any organization that owns your codespaces", e.StatusCode)
}

// ServiceError is returned on a transport failure or a server-side error
// (HTTP 5xx). These are transient from the caller's point of view.
type ServiceError struct {
	StatusCode int   // 0 when the request never got a response
	Err        error // underlying transport error, if any
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("contacting GitHub API: %v (try again later)", e.Err)
	}
	return fmt.Sprintf("GitHub API returned HTTP %d (try again later)", e.StatusCode)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is returned when a successful response body cannot
// be decoded into the expected listing shape.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from GitHub API: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
