// Package validation holds small pointer/value helpers shared by the bridge
// layer when marshaling between HTTP and repository models.
package validation

func StringPtr(s string) *string {
	return &s
}

// StringPtrIfNotEmpty returns a pointer to string if not empty, otherwise nil
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
