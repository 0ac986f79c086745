package news_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaracms/manara/internal/content/l10n"
	"github.com/manaracms/manara/internal/content/news"
	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/pkg/pointer"
)

var (
	ownerClaims = &sec.AuthClaims{UserID: 1, Email: "owner@manara.org"}
	otherClaims = &sec.AuthClaims{UserID: 2, Email: "other@manara.org"}
)

func testTitle() *l10n.LocalizedText {
	return &l10n.LocalizedText{En: "Title", Ar: "عنوان", Fr: "Titre"}
}

func testParagraph() *l10n.LocalizedText {
	return &l10n.LocalizedText{En: "Body", Ar: "نص", Fr: "Corps"}
}

func newTestService(t *testing.T) (*news.Service, *news.MemoryRepository) {
	t.Helper()
	repo := news.NewMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return news.NewService(repo, nil, logger), repo
}

func validInput() news.Input {
	return news.Input{
		Title:     testTitle(),
		Paragraph: testParagraph(),
		Image:     pointer.To("base64-image-data"),
	}
}

/*
TestCreateNews verifies the create path stamps ownership from the claims and
defaults the featured flag to false.
*/
func TestCreateNews(t *testing.T) {
	service, _ := newTestService(t)

	item, err := service.CreateNews(context.Background(), ownerClaims, validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "owner@manara.org", item.OwnerEmail)
	assert.Equal(t, int64(1), item.OwnerID)
	assert.False(t, item.IsFeatured)
	assert.False(t, item.CreatedAt.IsZero())
}

/*
TestCreateNews_MissingFields verifies title and paragraph are mandatory.
*/
func TestCreateNews_MissingFields(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name  string
		input news.Input
		field string
	}{
		{"no_title", news.Input{Paragraph: testParagraph(), Image: pointer.To("img")}, "title"},
		{"no_paragraph", news.Input{Title: testTitle(), Image: pointer.To("img")}, "paragraph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateNews(context.Background(), ownerClaims, tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestCreateNews_MediaRequired verifies a record cannot be created without any
attachment.
*/
func TestCreateNews_MediaRequired(t *testing.T) {
	service, _ := newTestService(t)

	input := news.Input{Title: testTitle(), Paragraph: testParagraph()}
	_, err := service.CreateNews(context.Background(), ownerClaims, input)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Either an image or a YouTube link is required", ae.Message)
}

/*
TestCreateNews_InvalidLink verifies the YouTube link must be an absolute
http(s) URL.
*/
func TestCreateNews_InvalidLink(t *testing.T) {
	service, _ := newTestService(t)

	input := news.Input{
		Title:       testTitle(),
		Paragraph:   testParagraph(),
		YoutubeLink: pointer.To("not a url"),
	}
	_, err := service.CreateNews(context.Background(), ownerClaims, input)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestListNews_Ordering verifies listings run newest-first.
*/
func TestListNews_Ordering(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	first, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)
	second, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	items, err := service.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
}

/*
TestListMyNews verifies the owner-scoped listing only returns the caller's
records.
*/
func TestListMyNews(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)
	_, err = service.CreateNews(ctx, otherClaims, validInput())
	require.NoError(t, err)

	items, err := service.ListMyNews(ctx, ownerClaims)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "owner@manara.org", items[0].OwnerEmail)
}

/*
TestGetNews_IDBoundary pins the identifier rule: malformed is a 400, absent
but well-formed is a 404.
*/
func TestGetNews_IDBoundary(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetNews(context.Background(), "")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INVALID_ID", ae.Code)

	_, err = service.GetNews(context.Background(), "not-an-identifier")
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INVALID_ID", ae.Code)

	_, err = service.GetNews(context.Background(), "0190b543-0000-7000-8000-000000000000")
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "News not found", ae.Message)
}

/*
TestUpdateNews_PartialMerge verifies unsent fields retain stored values while
sent fields replace them.
*/
func TestUpdateNews_PartialMerge(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	updated, err := service.UpdateNews(ctx, ownerClaims, created.ID, news.Input{
		IsFeatured: pointer.To(true),
	})
	require.NoError(t, err)

	assert.True(t, updated.IsFeatured)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Paragraph, updated.Paragraph)
	require.NotNil(t, updated.Image)
	assert.Equal(t, "base64-image-data", *updated.Image)
}

/*
TestUpdateNews_MediaSwap verifies submitting a link replaces the stored image.
*/
func TestUpdateNews_MediaSwap(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	updated, err := service.UpdateNews(ctx, ownerClaims, created.ID, news.Input{
		YoutubeLink: pointer.To("https://www.youtube.com/watch?v=abc"),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.Image)
	require.NotNil(t, updated.YoutubeLink)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", *updated.YoutubeLink)
}

/*
TestUpdateNews_Ownership verifies a non-owner is rejected with 403 and the
record is untouched.
*/
func TestUpdateNews_Ownership(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	_, err = service.UpdateNews(ctx, otherClaims, created.ID, news.Input{
		IsFeatured: pointer.To(true),
	})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "FORBIDDEN", ae.Code)

	stored, err := service.GetNews(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsFeatured)
}

/*
TestUpdateNews_VersionConflict verifies a stale writer loses the race with a
409 instead of silently overwriting.
*/
func TestUpdateNews_VersionConflict(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	// Two readers load the same version.
	copyA, err := repo.GetNews(ctx, created.ID)
	require.NoError(t, err)
	copyB, err := repo.GetNews(ctx, created.ID)
	require.NoError(t, err)

	// First write wins and bumps the version.
	require.NoError(t, repo.UpdateNews(ctx, copyA))

	// Second write carries the stale version and must fail.
	err = repo.UpdateNews(ctx, copyB)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "News was modified concurrently, please retry", ae.Message)
}

/*
TestDeleteNews verifies owner-gated deletion and the 404 on re-delete.
*/
func TestDeleteNews(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	err = service.DeleteNews(ctx, otherClaims, created.ID)
	require.NotNil(t, apperr.As(err))
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	require.NoError(t, service.DeleteNews(ctx, ownerClaims, created.ID))

	err = service.DeleteNews(ctx, ownerClaims, created.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestFeaturedNews_Cap verifies the homepage slice is capped at the configured
limit, newest-first, featured-only.
*/
func TestFeaturedNews_Cap(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < constants.FeaturedNewsLimit+2; i++ {
		input := validInput()
		input.IsFeatured = pointer.To(true)
		_, err := service.CreateNews(ctx, ownerClaims, input)
		require.NoError(t, err)
	}
	_, err := service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)

	items, err := service.FeaturedNews(ctx)
	require.NoError(t, err)
	assert.Len(t, items, constants.FeaturedNewsLimit)
	for _, item := range items {
		assert.True(t, item.IsFeatured)
	}
}

/*
TestFeaturedNews_Cache verifies the Redis cache-aside path: hits are served
from the cache and every mutation invalidates it.
*/
func TestFeaturedNews_Cache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := news.NewMemoryRepository()
	service := news.NewService(repo, news.NewCache(client, logger), logger)
	ctx := context.Background()

	input := validInput()
	input.IsFeatured = pointer.To(true)
	created, err := service.CreateNews(ctx, ownerClaims, input)
	require.NoError(t, err)

	// First read populates the cache.
	items, err := service.FeaturedNews(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, server.Exists(constants.RedisPrefixFeaturedNews))

	// A repository write that bypasses the service is invisible while cached.
	stale, err := repo.GetNews(ctx, created.ID)
	require.NoError(t, err)
	stale.IsFeatured = false
	require.NoError(t, repo.UpdateNews(ctx, stale))

	items, err = service.FeaturedNews(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// A service mutation invalidates, so the next read recomputes.
	_, err = service.CreateNews(ctx, ownerClaims, validInput())
	require.NoError(t, err)
	assert.False(t, server.Exists(constants.RedisPrefixFeaturedNews))

	items, err = service.FeaturedNews(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 0)
}
