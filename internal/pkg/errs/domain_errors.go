package errs

// Cross-layer sentinel errors. Usecases mark concrete failures with these so
// handlers can pick a status without inspecting infra types.
var (
	// Input errors
	ErrInvalidInput = New("invalid input")

	// Upstream errors
	ErrUpstreamFailure          = New("upstream dependency failed")
	ErrUpstreamContractViolated = New("upstream contract violated")

	// Store errors
	ErrNotFound = New("not found")
	ErrConflict = New("conflict")
)
