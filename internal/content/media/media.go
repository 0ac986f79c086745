// Copyright (c) 2026 Manara. All rights reserved.

/*
Package media implements the attachment rule shared by the content kinds that
carry both an inline image and an external video link.

A record must always end up with at least one of the two attached. The
resolution policy is explicit and server-enforced: supplying either field
clears the other, and supplying neither retains the stored pair untouched.
*/
package media

import "github.com/manaracms/manara/internal/platform/apperr"

// ErrMediaRequired rejects a record that would end up with neither an image
// nor a video link attached.
var ErrMediaRequired = apperr.ValidationError("Either an image or a YouTube link is required")

// Resolve computes the resulting (image, youtubeLink) pair.
//
// A nil provided field means "not sent"; a pointer to the empty string means
// "explicitly cleared". Create passes nil existing values so the same code
// path covers both operations.
//
// Resolution:
//   - neither field sent: the existing pair is retained as-is.
//   - one field sent with a value: it is stored and the other is cleared.
//   - both fields sent with values: both are stored (explicit caller intent).
//   - a field sent empty: that field is cleared.
//
// Fails with [ErrMediaRequired] only when the resulting pair is entirely
// empty.
func Resolve(providedImage, providedLink, existingImage, existingLink *string) (*string, *string, error) {
	image := existingImage
	link := existingLink

	imageSent := providedImage != nil
	linkSent := providedLink != nil

	if imageSent {
		image = valueOrNil(providedImage)
		// A replacement image displaces the stored link, but an explicit
		// clear of the image leaves the link alone.
		if !linkSent && image != nil {
			link = nil
		}
	}
	if linkSent {
		link = valueOrNil(providedLink)
		if !imageSent && link != nil {
			image = nil
		}
	}

	if isEmpty(image) && isEmpty(link) {
		return nil, nil, ErrMediaRequired
	}

	return image, link, nil
}

// valueOrNil collapses an explicit empty-string clear into nil storage.
func valueOrNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}

func isEmpty(value *string) bool {
	return value == nil || *value == ""
}
