// internal/services/comparison_service_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivegear/autoparts-backend/internal/models"
	"github.com/drivegear/autoparts-backend/internal/store/mocks"
)

func newComparisonFixture() (*ComparisonService, []models.Product) {
	var products []models.Product
	for i := 0; i < 6; i++ {
		products = append(products, models.Product{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      fmt.Sprintf("Part %d", i),
			Price:     float64(10 * (i + 1)),
		})
	}
	return NewComparisonService(&mocks.MemoryProductStore{Products: products}), products
}

func TestComparisonAddAndList(t *testing.T) {
	svc, products := newComparisonFixture()

	result, err := svc.Add("session-1", products[0].ID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, products[0].ID, result[0].ID)
}

func TestComparisonCapsAtFour(t *testing.T) {
	svc, products := newComparisonFixture()

	for i := 0; i < 4; i++ {
		_, err := svc.Add("session-1", products[i].ID)
		require.NoError(t, err)
	}

	// The fifth add leaves the selection unchanged, silently.
	result, err := svc.Add("session-1", products[4].ID)
	require.NoError(t, err)
	require.Len(t, result, 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, products[i].ID, result[i].ID)
	}
}

func TestComparisonIgnoresDuplicates(t *testing.T) {
	svc, products := newComparisonFixture()

	_, err := svc.Add("session-1", products[0].ID)
	require.NoError(t, err)
	result, err := svc.Add("session-1", products[0].ID)
	require.NoError(t, err)

	assert.Len(t, result, 1)
}

func TestComparisonRemove(t *testing.T) {
	svc, products := newComparisonFixture()

	_, err := svc.Add("session-1", products[0].ID)
	require.NoError(t, err)
	_, err = svc.Add("session-1", products[1].ID)
	require.NoError(t, err)

	result, err := svc.Remove("session-1", products[0].ID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, products[1].ID, result[0].ID)

	// Removing an absent product is a no-op.
	result, err = svc.Remove("session-1", products[5].ID)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestComparisonSessionsAreIsolated(t *testing.T) {
	svc, products := newComparisonFixture()

	_, err := svc.Add("session-a", products[0].ID)
	require.NoError(t, err)

	result, err := svc.List("session-b")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestComparisonRejectsUnknownProduct(t *testing.T) {
	svc, _ := newComparisonFixture()

	_, err := svc.Add("session-1", uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestComparisonClear(t *testing.T) {
	svc, products := newComparisonFixture()

	_, err := svc.Add("session-1", products[0].ID)
	require.NoError(t, err)

	svc.Clear("session-1")

	result, err := svc.List("session-1")
	require.NoError(t, err)
	assert.Empty(t, result)
}
