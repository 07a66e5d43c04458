package scholarship

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarhub/internal/database"
	"scholarhub/internal/domain"
	"scholarhub/internal/repository"
)

func newTestScholarshipService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(repository.NewScholarshipRepository(db))
}

func TestCreate_StartsAsDraft(t *testing.T) {
	svc := newTestScholarshipService(t)

	sch, err := svc.Create(context.Background(), CreateRequest{
		Title:  "  STEM Excellence Grant ",
		Amount: 5000,
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, domain.ScholarshipDraft, sch.Status)
	assert.Equal(t, "STEM Excellence Grant", sch.Title)
	assert.Len(t, sch.Code, 36, "code is a uuid")
	assert.NotZero(t, sch.ID)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestScholarshipService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_PartialApply(t *testing.T) {
	svc := newTestScholarshipService(t)
	ctx := context.Background()

	sch, err := svc.Create(ctx, CreateRequest{Title: "Grant", Amount: 1000}, 1)
	require.NoError(t, err)

	amount := int64(2500)
	updated, err := svc.Update(ctx, sch.ID, UpdateRequest{Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, int64(2500), updated.Amount)
	assert.Equal(t, "Grant", updated.Title, "untouched fields survive")
	assert.Equal(t, sch.Code, updated.Code)
}

func TestPublishAndClose(t *testing.T) {
	svc := newTestScholarshipService(t)
	ctx := context.Background()

	sch, err := svc.Create(ctx, CreateRequest{Title: "Grant", Amount: 1000}, 1)
	require.NoError(t, err)

	published, err := svc.Publish(ctx, sch.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ScholarshipPublished, published.Status)

	closed, err := svc.Close(ctx, sch.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ScholarshipClosed, closed.Status)

	got, err := svc.Get(ctx, sch.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ScholarshipClosed, got.Status)
}

func TestList_FilterAndSearch(t *testing.T) {
	svc := newTestScholarshipService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateRequest{Title: "STEM Grant", Amount: 1000}, 1)
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{Title: "Arts Fellowship", Amount: 2000}, 1)
	require.NoError(t, err)

	_, err = svc.Publish(ctx, a.ID)
	require.NoError(t, err)

	items, total, err := svc.List(ctx, ListQuery{Status: "PUBLISHED"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "STEM Grant", items[0].Title)

	items, total, err = svc.List(ctx, ListQuery{Q: "fellow"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Arts Fellowship", items[0].Title)

	_, total, err = svc.List(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
