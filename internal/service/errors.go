package service

// ValidationError reports that caller input violates a field constraint.
// It is raised before any side effect is performed and maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DeliveryError reports that the outbound email channel failed. It maps to
// HTTP 500 even when the submission was already persisted; persistence
// success is deliberately not part of the response contract.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "failed to send email: " + e.Err.Error() }

func (e *DeliveryError) Unwrap() error { return e.Err }
