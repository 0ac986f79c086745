package photo_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaracms/manara/internal/content/photo"
	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/pkg/pointer"
)

var ownerClaims = &sec.AuthClaims{UserID: 1, Email: "owner@manara.org"}

func newTestService(t *testing.T) *photo.Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return photo.NewService(photo.NewMemoryRepository(), logger)
}

/*
TestCreatePhoto verifies the single mandatory field: the image file itself.
*/
func TestCreatePhoto(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	item, err := service.CreatePhoto(ctx, ownerClaims, photo.Input{Image: pointer.To("base64-data")})
	require.NoError(t, err)
	assert.Equal(t, "owner@manara.org", item.OwnerEmail)

	for _, input := range []photo.Input{{}, {Image: pointer.To("")}} {
		_, err := service.CreatePhoto(ctx, ownerClaims, input)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		require.NotEmpty(t, ae.Details)
		assert.Equal(t, "An image file is required", ae.Details[0].Message)
	}
}

/*
TestUpdatePhoto verifies replacement semantics: a sent image replaces, an
unsent or empty one keeps the stored file.
*/
func TestUpdatePhoto(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreatePhoto(ctx, ownerClaims, photo.Input{Image: pointer.To("original")})
	require.NoError(t, err)

	kept, err := service.UpdatePhoto(ctx, ownerClaims, created.ID, photo.Input{})
	require.NoError(t, err)
	require.NotNil(t, kept.Image)
	assert.Equal(t, "original", *kept.Image)

	replaced, err := service.UpdatePhoto(ctx, ownerClaims, created.ID, photo.Input{Image: pointer.To("replacement")})
	require.NoError(t, err)
	require.NotNil(t, replaced.Image)
	assert.Equal(t, "replacement", *replaced.Image)

	other := &sec.AuthClaims{UserID: 2, Email: "other@manara.org"}
	_, err = service.UpdatePhoto(ctx, other, created.ID, photo.Input{Image: pointer.To("hijack")})
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}
