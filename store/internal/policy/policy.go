// Package policy decides who may change a book.
package policy

import "github.com/Astemirdum/book-store/pkg/auth"

// CanMutate reports whether caller may perform the operation on a book owned
// by ownerID (nil when the book has no owner). Safe (read) operations are
// always allowed; otherwise the caller must be the owner or staff.
func CanMutate(caller *auth.User, ownerID *int64, safe bool) bool {
	if safe {
		return true
	}
	if caller == nil {
		return false
	}
	if caller.IsStaff {
		return true
	}
	return ownerID != nil && *ownerID == caller.ID
}
