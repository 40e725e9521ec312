package meshes

import "fmt"

// FormatError reports a corrupt or inconsistent mesh blob (bad chunk header, out-of-range
// index entry, duplicate name). It is fatal at startup.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "meshes: invalid blob: " + e.Reason
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a lookup of a mesh name that the index does not contain.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("meshes: mesh named %q does not appear in index", e.Name)
}
