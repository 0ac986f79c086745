package partnership_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaracms/manara/internal/content/partnership"
	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/pkg/pointer"
)

var (
	ownerClaims = &sec.AuthClaims{UserID: 1, Email: "owner@manara.org"}
	otherClaims = &sec.AuthClaims{UserID: 2, Email: "other@manara.org"}
)

func newTestService(t *testing.T) *partnership.Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return partnership.NewService(partnership.NewMemoryRepository(), logger)
}

func validInput() partnership.Input {
	return partnership.Input{
		Image:      pointer.To("base64-logo-data"),
		WebsiteURL: pointer.To("https://partner.example.org"),
	}
}

/*
TestCreatePartnership verifies the mandatory logo and website URL rules.
*/
func TestCreatePartnership(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	item, err := service.CreatePartnership(ctx, ownerClaims, validInput())
	require.NoError(t, err)
	assert.Equal(t, "owner@manara.org", item.OwnerEmail)
	assert.Equal(t, "https://partner.example.org", item.WebsiteURL)

	tests := []struct {
		name  string
		input partnership.Input
		field string
	}{
		{"no_image", partnership.Input{WebsiteURL: pointer.To("https://x.org")}, "image"},
		{"empty_image", partnership.Input{Image: pointer.To(""), WebsiteURL: pointer.To("https://x.org")}, "image"},
		{"no_url", partnership.Input{Image: pointer.To("logo")}, "websiteUrl"},
		{"bad_url", partnership.Input{Image: pointer.To("logo"), WebsiteURL: pointer.To("not-a-url")}, "websiteUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreatePartnership(ctx, ownerClaims, tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestUpdatePartnership_ImageRetention pins the update rule for the logo: an
unsent or empty image keeps the stored one, unlike the news media pair where
an empty value is an explicit clear.
*/
func TestUpdatePartnership_ImageRetention(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreatePartnership(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	t.Run("unsent_image_is_retained", func(t *testing.T) {
		updated, err := service.UpdatePartnership(ctx, ownerClaims, created.ID, partnership.Input{
			WebsiteURL: pointer.To("https://partner.example.org/new"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Image)
		assert.Equal(t, "base64-logo-data", *updated.Image)
		assert.Equal(t, "https://partner.example.org/new", updated.WebsiteURL)
	})

	t.Run("empty_image_is_retained", func(t *testing.T) {
		updated, err := service.UpdatePartnership(ctx, ownerClaims, created.ID, partnership.Input{
			Image: pointer.To(""),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Image)
		assert.Equal(t, "base64-logo-data", *updated.Image)
	})

	t.Run("new_image_replaces", func(t *testing.T) {
		updated, err := service.UpdatePartnership(ctx, ownerClaims, created.ID, partnership.Input{
			Image: pointer.To("new-logo-data"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Image)
		assert.Equal(t, "new-logo-data", *updated.Image)
	})
}

/*
TestUpdatePartnership_Ownership verifies the non-owner gate.
*/
func TestUpdatePartnership_Ownership(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreatePartnership(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	_, err = service.UpdatePartnership(ctx, otherClaims, created.ID, partnership.Input{
		WebsiteURL: pointer.To("https://hijack.example.org"),
	})
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	err = service.DeletePartnership(ctx, otherClaims, created.ID)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}

/*
TestListPartnerships verifies newest-first ordering and owner scoping.
*/
func TestListPartnerships(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	first, err := service.CreatePartnership(ctx, ownerClaims, validInput())
	require.NoError(t, err)
	second, err := service.CreatePartnership(ctx, otherClaims, validInput())
	require.NoError(t, err)

	items, err := service.ListPartnerships(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)

	mine, err := service.ListMyPartnerships(ctx, ownerClaims)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}
