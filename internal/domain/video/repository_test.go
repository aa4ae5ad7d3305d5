package video

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mediavault/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	// one connection keeps sqlite writes serialized under concurrent tests
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Video{}))
	return db
}

func seedVideo(t *testing.T, repo Repository, owner string, status Status) *Video {
	t.Helper()
	v := &Video{
		Owner:            owner,
		OriginalFilename: "clip.mp4",
		StoredFilename:   "abc_clip.mp4",
		Status:           status,
	}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestClaimProcessing_SingleWinner(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()
	v := seedVideo(t, repo, "alice", StatusUploaded)

	claimed, err := repo.ClaimProcessing(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	// the second claim must lose while the row is processing
	claimed, err = repo.ClaimProcessing(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestClaimProcessing_ClearsStaleOutput(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()
	v := seedVideo(t, repo, "alice", StatusUploaded)

	claimed, err := repo.ClaimProcessing(ctx, v.ID)
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, repo.FinishProcessing(ctx, v.ID, "abc_clip_720p.mp4"))

	// a retry of a completed row re-enters processing with output cleared
	claimed, err = repo.ClaimProcessing(ctx, v.ID)
	require.NoError(t, err)
	require.True(t, claimed)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)
	assert.Empty(t, got.OutputFilename)
}

func TestFinishProcessing_RequiresProcessing(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()
	v := seedVideo(t, repo, "alice", StatusUploaded)

	// no claim was taken; the conditional update must not move the row
	require.NoError(t, repo.FinishProcessing(ctx, v.ID, "out.mp4"))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusUploaded, got.Status)
	assert.Empty(t, got.OutputFilename)
}

func TestFailProcessing(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()
	v := seedVideo(t, repo, "alice", StatusUploaded)

	claimed, err := repo.ClaimProcessing(ctx, v.ID)
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, repo.FailProcessing(ctx, v.ID))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Empty(t, got.OutputFilename)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestList_ScopingAndFilter(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()
	seedVideo(t, repo, "alice", StatusUploaded)
	seedVideo(t, repo, "alice", StatusCompleted)
	seedVideo(t, repo, "bob", StatusUploaded)

	all, err := repo.List(ctx, ListFilter{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// most recent first
	assert.Equal(t, "bob", all[0].Owner)

	mine, err := repo.List(ctx, ListFilter{Owner: "alice", Limit: 20})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, v := range mine {
		assert.Equal(t, "alice", v.Owner)
	}

	uploaded, err := repo.List(ctx, ListFilter{Owner: "alice", Status: StatusUploaded, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, uploaded, 1)
}
