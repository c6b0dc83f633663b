package auth

import "errors"

// ErrNotOwner is returned when a caller tries to mutate a record owned by
// someone else.
var ErrNotOwner = errors.New("not authorized")

// AuthorizeOwner gates a mutation: the caller-supplied email must exactly
// match the email stored on the record at creation. The comparison is
// case-sensitive.
func AuthorizeOwner(ownerEmail, callerEmail string) error {
	if ownerEmail != callerEmail {
		return ErrNotOwner
	}
	return nil
}
