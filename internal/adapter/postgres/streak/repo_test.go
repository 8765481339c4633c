package streak_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/adapter/postgres/streak"
	"github.com/cinevocab/backend/internal/adapter/postgres/testhelper"
	"github.com/cinevocab/backend/internal/domain"
)

func TestRepo_Upsert_AndGet(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := streak.New(pool)
	ctx := context.Background()

	userID := uuid.New()
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.Upsert(ctx, domain.LearningStreak{
		UserID:         userID,
		CurrentStreak:  1,
		LongestStreak:  1,
		LastStudyDate:  &day,
		TotalStudyDays: 1,
	})
	if err != nil {
		t.Fatalf("Upsert insert: unexpected error: %v", err)
	}
	if created.CurrentStreak != 1 {
		t.Errorf("created = %+v", created)
	}

	next := day.AddDate(0, 0, 1)
	updated, err := repo.Upsert(ctx, domain.LearningStreak{
		UserID:         userID,
		CurrentStreak:  2,
		LongestStreak:  2,
		LastStudyDate:  &next,
		TotalStudyDays: 2,
	})
	if err != nil {
		t.Fatalf("Upsert update: unexpected error: %v", err)
	}
	if updated.CurrentStreak != 2 || updated.TotalStudyDays != 2 {
		t.Errorf("updated = %+v", updated)
	}

	got, err := repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got.LongestStreak != 2 {
		t.Errorf("got = %+v", got)
	}
	if got.LastStudyDate == nil || !got.LastStudyDate.Equal(next) {
		t.Errorf("LastStudyDate = %v, want %v", got.LastStudyDate, next)
	}
}

func TestRepo_Get_NotFound(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := streak.New(pool)

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
