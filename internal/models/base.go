// internal/models/base.go
package models

// Backend tables are owned by an external loader and expose most numeric
// columns as nullable. These helpers collapse NULL to the zero value.

// Float returns *v, or 0 when v is nil.
func Float(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// String returns *v, or "" when v is nil.
func String(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
