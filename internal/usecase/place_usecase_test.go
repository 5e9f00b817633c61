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
	"github.com/veggieplaces-microservice/internal/usecase/dto"
)

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetNearby(ctx context.Context, lat, lon, radiusKm float64, classifications []string) ([]*domain.Place, error) {
	args := m.Called(ctx, lat, lon, radiusKm, classifications)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) GetAll(ctx context.Context) ([]*domain.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) Upsert(ctx context.Context, place *domain.Place) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *MockPlaceRepository) UpsertBatch(ctx context.Context, places []*domain.Place) (int, error) {
	args := m.Called(ctx, places)
	return args.Int(0), args.Error(1)
}

func TestPlaceUseCase_SearchByRadius(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success filters ineligible places", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		places := []*domain.Place{
			{
				ID:      1,
				OSMId:   101,
				OSMType: domain.OSMTypeNode,
				Name:    "Vegan Corner",
				Lat:     52.5201,
				Lon:     13.4051,
				Tags:    map[string]string{"diet:vegan": "only"},
			},
			{
				ID:      2,
				OSMId:   102,
				OSMType: domain.OSMTypeNode,
				Name:    "Steakhouse",
				Lat:     52.5202,
				Lon:     13.4052,
				Tags:    map[string]string{"cuisine": "steak_house"},
			},
		}
		mockRepo.On("GetNearby", ctx, 52.52, 13.405, 2.0, []string(nil)).Return(places, nil)

		resp, err := uc.SearchByRadius(ctx, dto.RadiusPlacesRequest{
			Lat:      52.52,
			Lon:      13.405,
			RadiusKm: 2.0,
		})

		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(1), resp.Places[0].ID)
		assert.True(t, resp.Places[0].Payload.Eligible)
		assert.Greater(t, resp.Places[0].Distance, 0.0)
		mockRepo.AssertExpectations(t)
	})

	t.Run("skips places with nil tags", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		places := []*domain.Place{
			{ID: 1, Lat: 52.52, Lon: 13.405, Tags: nil},
		}
		mockRepo.On("GetNearby", ctx, 52.52, 13.405, 1.0, []string(nil)).Return(places, nil)

		resp, err := uc.SearchByRadius(ctx, dto.RadiusPlacesRequest{
			Lat:      52.52,
			Lon:      13.405,
			RadiusKm: 1.0,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		_, err := uc.SearchByRadius(ctx, dto.RadiusPlacesRequest{
			Lat:      91.0,
			Lon:      13.405,
			RadiusKm: 1.0,
		})

		assert.Equal(t, apperrors.ErrInvalidCoordinates, err)
		mockRepo.AssertNotCalled(t, "GetNearby")
	})

	t.Run("invalid radius", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		_, err := uc.SearchByRadius(ctx, dto.RadiusPlacesRequest{
			Lat:      52.52,
			Lon:      13.405,
			RadiusKm: -5,
		})

		assert.Equal(t, apperrors.ErrInvalidRadius, err)
	})

	t.Run("invalid classification filter", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		_, err := uc.SearchByRadius(ctx, dto.RadiusPlacesRequest{
			Lat:             52.52,
			Lon:             13.405,
			RadiusKm:        1.0,
			Classifications: []string{"carnivore"},
		})

		assert.Equal(t, apperrors.ErrInvalidClassification, err)
	})

	t.Run("repository error is passed through", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		dbErr := errors.New("connection refused")
		mockRepo.On("GetNearby", ctx, 52.52, 13.405, 1.0, []string(nil)).
			Return(nil, dbErr)

		_, err := uc.SearchByRadius(ctx, dto.RadiusPlacesRequest{
			Lat:      52.52,
			Lon:      13.405,
			RadiusKm: 1.0,
		})

		assert.Equal(t, dbErr, err)
	})
}

func TestPlaceUseCase_GetByID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		place := &domain.Place{
			ID:      7,
			OSMId:   707,
			OSMType: domain.OSMTypeWay,
			Name:    "Green Garden",
			Lat:     48.2,
			Lon:     16.37,
			Tags:    map[string]string{"diet:vegetarian": "only"},
		}
		mockRepo.On("GetByID", ctx, int64(7)).Return(place, nil)

		result, err := uc.GetByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.ID)
		assert.Equal(t, domain.DietVegetarianOnly, result.Payload.Classification)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, apperrors.ErrPlaceNotFound)

		result, err := uc.GetByID(ctx, 99)

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrPlaceNotFound, err)
	})

	t.Run("stored place with nil tags", func(t *testing.T) {
		mockRepo := &MockPlaceRepository{}
		uc := usecase.NewPlaceUseCase(mockRepo, logger)

		mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.Place{ID: 5}, nil)

		result, err := uc.GetByID(ctx, 5)

		assert.Nil(t, result)
		assert.Equal(t, apperrors.ErrInternalServer, err)
	})
}
