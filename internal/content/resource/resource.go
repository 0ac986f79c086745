// Copyright (c) 2026 Manara. All rights reserved.

/*
Package resource holds the small pieces shared by every content kind: the
opaque identifier type and the ownership gate.

Identifier shape is a storage concern. The relational adapter uses integer
keys and the in-memory adapter uses UUID strings, so the boundary type is an
opaque string that each adapter parses internally. A syntactically malformed
identifier is a client error (the store is never consulted); a well-formed
identifier with no record behind it is a missing resource.
*/
package resource

import (
	"strconv"

	"github.com/manaracms/manara/internal/platform/apperr"
)

// ID is an opaque, store-assigned resource identifier.
type ID string

func (id ID) String() string { return string(id) }

// FromInt64 formats a relational integer key as an opaque identifier.
func FromInt64(value int64) ID {
	return ID(strconv.FormatInt(value, 10))
}

// Int64 parses the identifier as a relational integer key.
//
// Fails with INVALID_ID (400) when the identifier is not a positive integer.
func (id ID) Int64(kind string) (int64, error) {
	value, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || value <= 0 {
		return 0, apperr.InvalidID(kind)
	}
	return value, nil
}

// RequireOwner enforces the mutation gate for content records.
//
// Ownership binds to the creator's email, not the creator's numeric
// identifier. The authenticated email from the token claims must match the
// stored owner email exactly.
func RequireOwner(ownerEmail, requesterEmail string) error {
	if ownerEmail != requesterEmail {
		return apperr.Forbidden("You can only modify your own content")
	}
	return nil
}
