package api

import "fmt"

// Fault is a non-success HTTP reply: the status code plus the best-effort
// human message the backend sent. Callers never retry on it.
type Fault struct {
	Status  int
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("api fault: status=%d message=%q", f.Status, f.Message)
}

// ValidationError is a client-side precondition failure detected before
// any network call goes out.
type ValidationError string

func (v ValidationError) Error() string { return string(v) }
