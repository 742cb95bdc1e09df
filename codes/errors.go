package codes

import (
	"fmt"
)

// UnknownCodeError is returned when a symbolic name is not part of a namespace.
type UnknownCodeError struct {
	Namespace Namespace
	Name      string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code name %q", e.Namespace, e.Name)
}

// UnknownNamespaceError is returned by the namespace tagged lookups for an unrecognised namespace.
type UnknownNamespaceError struct {
	Namespace string
}

func (e *UnknownNamespaceError) Error() string {
	return fmt.Sprintf("unknown code namespace %q", e.Namespace)
}
