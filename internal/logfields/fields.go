// Package logfields centralizes the logrus field names used across the
// module so log output stays greppable.
package logfields

const (
	// Identifiers

	Name      = "name"
	Operation = "operation"

	// Paths and buffers

	File     = "file"
	Path     = "path"
	Pattern  = "pattern"
	Size     = "size"
	Capacity = "capacity"

	// Common Misc

	Attempt = "attemptNo"
	Filters = "filters"
	Form    = "form"
)
