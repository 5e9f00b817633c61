package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/veggieplaces-microservice/internal/domain"
	apperrors "github.com/veggieplaces-microservice/internal/pkg/errors"
	"github.com/veggieplaces-microservice/internal/usecase"
)

// MockOverpassRepository is a mock of OverpassRepository
type MockOverpassRepository struct {
	mock.Mock
}

func (m *MockOverpassRepository) Load(path string) (*domain.OverpassLoadResult, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverpassLoadResult), args.Error(1)
}

func TestImportUseCase_ImportFromFile(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success classifies and names records", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		mockOverpass := &MockOverpassRepository{}
		uc := usecase.NewImportUseCase(mockPlaces, mockOverpass, logger)

		mockOverpass.On("Load", "./data/overpass.json").Return(&domain.OverpassLoadResult{
			Records: []*domain.OverpassRecord{
				{
					OSMId:   101,
					OSMType: domain.OSMTypeNode,
					Name:    "Vegan Corner",
					Lat:     52.52,
					Lon:     13.405,
					Tags:    map[string]string{"name": "Vegan Corner", "diet:vegan": "only"},
				},
				{
					OSMId:   102,
					OSMType: domain.OSMTypeWay,
					Lat:     52.53,
					Lon:     13.41,
					Tags:    map[string]string{"diet:vegetarian": "yes"},
				},
			},
			ElementsRead: 3,
			Skipped:      1,
		}, nil)

		mockPlaces.On("UpsertBatch", ctx, mock.MatchedBy(func(places []*domain.Place) bool {
			if len(places) != 2 {
				return false
			}
			return places[0].Classification == domain.DietVeganOnly &&
				places[1].Classification == domain.DietVegetarianYes &&
				places[1].Name == "way 102"
		})).Return(2, nil)

		resp, err := uc.ImportFromFile(ctx, "./data/overpass.json")

		require.NoError(t, err)
		assert.Equal(t, 3, resp.ElementsRead)
		assert.Equal(t, 2, resp.Imported)
		assert.Equal(t, 1, resp.Skipped)
		mockPlaces.AssertExpectations(t)
	})

	t.Run("loader failure", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		mockOverpass := &MockOverpassRepository{}
		uc := usecase.NewImportUseCase(mockPlaces, mockOverpass, logger)

		mockOverpass.On("Load", "missing.json").Return(nil, errors.New("no such file"))

		resp, err := uc.ImportFromFile(ctx, "missing.json")

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrImportFailed, err)
		mockPlaces.AssertNotCalled(t, "UpsertBatch")
	})

	t.Run("storage failure is passed through", func(t *testing.T) {
		mockPlaces := &MockPlaceRepository{}
		mockOverpass := &MockOverpassRepository{}
		uc := usecase.NewImportUseCase(mockPlaces, mockOverpass, logger)

		mockOverpass.On("Load", "export.json").Return(&domain.OverpassLoadResult{
			Records: []*domain.OverpassRecord{
				{OSMId: 1, OSMType: domain.OSMTypeNode, Tags: map[string]string{}},
			},
			ElementsRead: 1,
		}, nil)
		dbErr := errors.New("connection refused")
		mockPlaces.On("UpsertBatch", ctx, mock.Anything).Return(0, dbErr)

		_, err := uc.ImportFromFile(ctx, "export.json")

		assert.Equal(t, dbErr, err)
	})
}
