package repositories

import (
	"testing"

	"studiofit_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTerms(t *testing.T, repo TermsRepository, version string, termType models.TermType) *models.Terms {
	t.Helper()
	terms := &models.Terms{Version: version, TermType: termType, Content: "body " + version}
	require.NoError(t, repo.Create(terms))
	return terms
}

func TestTermsRepository_ActivateExclusive(t *testing.T) {
	db := newTestDB(t)
	repo := NewTermsRepository(db)

	v1 := createTestTerms(t, repo, "1.0", models.TermTypeTerms)
	v2 := createTestTerms(t, repo, "2.0", models.TermTypeTerms)

	activated, err := repo.ActivateExclusive(v1.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.False(t, activated.EffectiveDate.IsZero())

	// Activating the successor deactivates the predecessor.
	_, err = repo.ActivateExclusive(v2.ID)
	require.NoError(t, err)

	active, err := repo.FindActiveByType(models.TermTypeTerms)
	require.NoError(t, err)
	assert.Equal(t, v2.ID, active.ID)

	var activeCount int64
	require.NoError(t, db.Model(&models.Terms{}).
		Where("term_type = ? AND is_active = ?", models.TermTypeTerms, true).
		Count(&activeCount).Error)
	assert.EqualValues(t, 1, activeCount)
}

func TestTermsRepository_ActivateExclusive_ScopedToTermType(t *testing.T) {
	db := newTestDB(t)
	repo := NewTermsRepository(db)

	terms := createTestTerms(t, repo, "1.0", models.TermTypeTerms)
	regulation := createTestTerms(t, repo, "1.0", models.TermTypeInteriorRegulation)

	_, err := repo.ActivateExclusive(terms.ID)
	require.NoError(t, err)
	_, err = repo.ActivateExclusive(regulation.ID)
	require.NoError(t, err)

	// One active version per type, independently.
	activeTerms, err := repo.FindActiveByType(models.TermTypeTerms)
	require.NoError(t, err)
	assert.Equal(t, terms.ID, activeTerms.ID)

	activeRegulation, err := repo.FindActiveByType(models.TermTypeInteriorRegulation)
	require.NoError(t, err)
	assert.Equal(t, regulation.ID, activeRegulation.ID)
}

func TestTermsRepository_ActivateExclusive_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewTermsRepository(db)

	_, err := repo.ActivateExclusive("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrTermsNotFound)
}

func TestTermsRepository_FindActiveByType_NoneActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewTermsRepository(db)

	createTestTerms(t, repo, "1.0", models.TermTypeTerms)

	_, err := repo.FindActiveByType(models.TermTypeTerms)
	assert.ErrorIs(t, err, ErrNoActiveTerms)
}
