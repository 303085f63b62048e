package stores

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planguard/planguard/pkg/policy"
	"github.com/planguard/planguard/pkg/tfplan"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(Config{
		Path: filepath.Join(t.TempDir(), "planguard.db"),
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Init(ctx))
	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRun() *policy.RunReport {
	report := policy.NewReport()
	report.Resources["aws_s3_bucket.logs"] = &tfplan.ResourceChange{Address: "aws_s3_bucket.logs"}
	report.Messages["aws_s3_bucket.logs"] = "aws_s3_bucket.logs has acl with value public-read that is not equal to private"

	started := time.Now().Add(-time.Second)
	return &policy.RunReport{
		ID:          uuid.NewString(),
		SuiteName:   "baseline",
		StartedAt:   started,
		CompletedAt: started.Add(time.Second),
		Results: []policy.CheckResult{
			{
				Check:      policy.Check{Name: "private-acl"},
				Report:     report,
				Scanned:    2,
				Violations: 1,
			},
		},
		Violations: 1,
	}
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	_, err := NewSQLiteStore(Config{})
	assert.Error(t, err)
}

func TestNewSQLiteStoreDefaultsPoolConfig(t *testing.T) {
	store, err := NewSQLiteStore(Config{Path: filepath.Join(t.TempDir(), "planguard.db")})
	require.NoError(t, err)

	assert.Equal(t, 25, store.cfg.MaxOpenConns)
	assert.Equal(t, 5, store.cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, store.cfg.ConnMaxLifetime)
}

func TestInitAppliesPoolConfig(t *testing.T) {
	store, err := NewSQLiteStore(Config{
		Path:            filepath.Join(t.TempDir(), "planguard.db"),
		MaxOpenConns:    3,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Init(ctx))
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, 3, store.db.Stats().MaxOpenConnections)
}

func TestSaveAndGetRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	run := sampleRun()

	require.NoError(t, store.SaveRun(ctx, run, "plan.json"))

	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "baseline", got.SuiteName)
	assert.Equal(t, "plan.json", got.PlanPath)
	assert.Equal(t, 1, got.Checks)
	assert.Equal(t, 1, got.Violations)
}

func TestGetRunNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetRun(context.Background(), "nope")
	assert.Error(t, err)
}

func TestListRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := sampleRun()
	second := sampleRun()
	second.StartedAt = first.StartedAt.Add(time.Minute)

	require.NoError(t, store.SaveRun(ctx, first, ""))
	require.NoError(t, store.SaveRun(ctx, second, ""))

	runs, err := store.ListRuns(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// Most recent first.
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)

	limited, err := store.ListRuns(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestListViolations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	run := sampleRun()

	require.NoError(t, store.SaveRun(ctx, run, ""))

	violations, err := store.ListViolations(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, run.ID, violations[0].RunID)
	assert.Equal(t, "private-acl", violations[0].CheckName)
	assert.Equal(t, "aws_s3_bucket.logs", violations[0].Address)
	assert.Contains(t, violations[0].Message, "not equal to private")
}

func TestDeleteRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	run := sampleRun()

	require.NoError(t, store.SaveRun(ctx, run, ""))
	require.NoError(t, store.DeleteRun(ctx, run.ID))

	_, err := store.GetRun(ctx, run.ID)
	assert.Error(t, err)

	// Violations cascade.
	violations, err := store.ListViolations(ctx, run.ID)
	require.NoError(t, err)
	assert.Empty(t, violations)

	assert.Error(t, store.DeleteRun(ctx, run.ID))
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}
