package topic_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaracms/manara/internal/content/l10n"
	"github.com/manaracms/manara/internal/content/resource"
	"github.com/manaracms/manara/internal/content/topic"
	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/pkg/pointer"
)

var (
	ownerClaims = &sec.AuthClaims{UserID: 1, Email: "owner@manara.org"}
	otherClaims = &sec.AuthClaims{UserID: 2, Email: "other@manara.org"}
)

func testTitle() *l10n.LocalizedText {
	return &l10n.LocalizedText{En: "History", Ar: "تاريخ", Fr: "Histoire"}
}

func testParagraph() *l10n.LocalizedText {
	return &l10n.LocalizedText{En: "Body", Ar: "نص", Fr: "Corps"}
}

func newTestService(t *testing.T) *topic.Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return topic.NewService(topic.NewMemoryRepository(), logger)
}

func validInput() topic.Input {
	return topic.Input{
		Title:     testTitle(),
		Paragraph: testParagraph(),
		Image:     pointer.To("base64-image-data"),
	}
}

/*
TestCreateTopic verifies the create path stamps ownership from the claims and
enforces the mandatory fields.
*/
func TestCreateTopic(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	item, err := service.CreateTopic(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "owner@manara.org", item.OwnerEmail)
	assert.Equal(t, int64(1), item.OwnerID)
	assert.False(t, item.CreatedAt.IsZero())

	t.Run("no_title", func(t *testing.T) {
		_, err := service.CreateTopic(ctx, ownerClaims, topic.Input{
			Paragraph: testParagraph(),
			Image:     pointer.To("img"),
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		require.Len(t, ae.Details, 1)
		assert.Equal(t, "title", ae.Details[0].Field)
	})

	t.Run("no_media", func(t *testing.T) {
		_, err := service.CreateTopic(ctx, ownerClaims, topic.Input{
			Title:     testTitle(),
			Paragraph: testParagraph(),
		})

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Either an image or a YouTube link is required", ae.Message)
	})
}

/*
TestGetTopic_IDBoundary pins the identifier rule: malformed is a 400, absent
but well-formed is a 404 naming the kind.
*/
func TestGetTopic_IDBoundary(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	for _, malformed := range []string{"", "not-an-identifier"} {
		_, err := service.GetTopic(ctx, resource.ID(malformed))
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "INVALID_ID", ae.Code)
	}

	_, err := service.GetTopic(ctx, "0190b543-0000-7000-8000-000000000000")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "Topic not found", ae.Message)
}

/*
TestUpdateTopic_PartialMerge verifies unsent fields retain stored values while
sent fields replace them.
*/
func TestUpdateTopic_PartialMerge(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateTopic(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	updated, err := service.UpdateTopic(ctx, ownerClaims, created.ID, topic.Input{
		Title: &l10n.LocalizedText{En: "Mission", Ar: "مهمة", Fr: "Mission"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Mission", updated.Title.En)
	assert.Equal(t, created.Paragraph, updated.Paragraph)
	require.NotNil(t, updated.Image)
	assert.Equal(t, "base64-image-data", *updated.Image)
}

/*
TestUpdateTopic_MediaSwap verifies submitting a link replaces the stored image
while an update with no media fields keeps the stored attachment.
*/
func TestUpdateTopic_MediaSwap(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateTopic(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	// No media fields sent: the stored image survives.
	kept, err := service.UpdateTopic(ctx, ownerClaims, created.ID, topic.Input{
		Paragraph: testParagraph(),
	})
	require.NoError(t, err)
	require.NotNil(t, kept.Image)
	assert.Nil(t, kept.YoutubeLink)

	// A link swaps out the image.
	swapped, err := service.UpdateTopic(ctx, ownerClaims, created.ID, topic.Input{
		YoutubeLink: pointer.To("https://www.youtube.com/watch?v=abc"),
	})
	require.NoError(t, err)
	assert.Nil(t, swapped.Image)
	require.NotNil(t, swapped.YoutubeLink)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", *swapped.YoutubeLink)
}

/*
TestUpdateTopic_Ownership verifies a non-owner is rejected with 403 and the
record is untouched.
*/
func TestUpdateTopic_Ownership(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateTopic(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	_, err = service.UpdateTopic(ctx, otherClaims, created.ID, topic.Input{
		Title: &l10n.LocalizedText{En: "Hijack", Ar: "اختطاف", Fr: "Piratage"},
	})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)
	assert.Equal(t, "You can only modify your own content", ae.Message)

	stored, err := service.GetTopic(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "History", stored.Title.En)
}

/*
TestDeleteTopic verifies owner-gated deletion and the 404 on re-delete.
*/
func TestDeleteTopic(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateTopic(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	err = service.DeleteTopic(ctx, otherClaims, created.ID)
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	require.NoError(t, service.DeleteTopic(ctx, ownerClaims, created.ID))

	err = service.DeleteTopic(ctx, ownerClaims, created.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
