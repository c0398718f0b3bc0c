package cli

// loadError carries the user-facing failure text of a load while keeping
// the fetch error for errors.Is/As.
type loadError struct {
	msg string
	err error
}

func (e loadError) Error() string { return e.msg }
func (e loadError) Unwrap() error { return e.err }
