package repository

import (
	"path/filepath"
	"testing"

	"github.com/lexhaven/lexai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newCaseRepo(t *testing.T, db *DB) *CaseRepository {
	t.Helper()
	return NewCaseRepository(db, UUIDGenerator{}, zap.NewNop())
}

func summaryNamed(name string) domain.CaseSummary {
	return domain.CaseSummary{
		CaseName:    name,
		FactsOfCase: "facts about " + name,
		Conclusion:  "conclusion for " + name,
	}
}

func TestCaseRepositoryAddThenAll(t *testing.T) {
	db := newTestDB(t)
	repo := newCaseRepo(t, db)
	require.NoError(t, repo.LoadForOwner("user-1"))

	first, err := repo.Add("a.pdf", "text a", summaryNamed("A vs B"))
	require.NoError(t, err)
	second, err := repo.Add("b.pdf", "text b", summaryNamed("C vs D"))
	require.NoError(t, err)

	all := repo.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest case first")
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, "user-1", all[0].OwnerID)
}

func TestCaseRepositoryAddWithoutOwner(t *testing.T) {
	db := newTestDB(t)
	repo := newCaseRepo(t, db)

	_, err := repo.Add("a.pdf", "text", summaryNamed("A vs B"))
	assert.ErrorIs(t, err, domain.ErrNoOwner)
}

func TestCaseRepositoryOwnerSwitchIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := newCaseRepo(t, db)

	require.NoError(t, repo.LoadForOwner("user-a"))
	_, err := repo.Add("a.pdf", "text", summaryNamed("A vs B"))
	require.NoError(t, err)

	// Owner B has no data: the set must be empty immediately after the switch.
	require.NoError(t, repo.LoadForOwner("user-b"))
	assert.Empty(t, repo.All())

	// Switching back reloads owner A's persisted set.
	require.NoError(t, repo.LoadForOwner("user-a"))
	assert.Len(t, repo.All(), 1)
}

func TestCaseRepositoryPersistsAcrossInstances(t *testing.T) {
	db := newTestDB(t)
	repo := newCaseRepo(t, db)
	require.NoError(t, repo.LoadForOwner("user-1"))
	added, err := repo.Add("a.pdf", "text", summaryNamed("A vs B"))
	require.NoError(t, err)

	fresh := newCaseRepo(t, db)
	require.NoError(t, fresh.LoadForOwner("user-1"))
	all := fresh.All()
	require.Len(t, all, 1)
	assert.Equal(t, added.ID, all[0].ID)
}

func TestCaseRepositoryDeleteUnknownIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := newCaseRepo(t, db)
	require.NoError(t, repo.LoadForOwner("user-1"))
	_, err := repo.Add("a.pdf", "text", summaryNamed("A vs B"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete("case-does-not-exist"))
	assert.Len(t, repo.All(), 1)

	// Persisted state unchanged too.
	fresh := newCaseRepo(t, db)
	require.NoError(t, fresh.LoadForOwner("user-1"))
	assert.Len(t, fresh.All(), 1)
}

func TestCaseRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := newCaseRepo(t, db)
	require.NoError(t, repo.LoadForOwner("user-1"))
	added, err := repo.Add("a.pdf", "text", summaryNamed("A vs B"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(added.ID))
	assert.Empty(t, repo.All())

	_, found := repo.Get(added.ID)
	assert.False(t, found)
}

func TestCaseRepositoryCorruptPayloadRecoversEmpty(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Put(caseKey("user-1"), "{not json"))

	repo := newCaseRepo(t, db)
	require.NoError(t, repo.LoadForOwner("user-1"))
	assert.Empty(t, repo.All())

	// The repository is usable after recovery.
	_, err := repo.Add("a.pdf", "text", summaryNamed("A vs B"))
	require.NoError(t, err)
	assert.Len(t, repo.All(), 1)
}
