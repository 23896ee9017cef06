package exit

import "fmt"

// Process exit codes. Lookup, usage, and configuration problems exit with
// CodeUsage; failures of an external system (cluster API, ssh, DCIM) exit
// with CodeAdapter.
const (
	CodeUsage   = 1
	CodeAdapter = 2
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, err error) error {
	return &Error{Code: code, Err: err}
}
