package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/pkg/errors"
	"github.com/veggieplaces-microservice/internal/usecase"
	"github.com/veggieplaces-microservice/internal/usecase/dto"
)

func TestEvaluateUseCase_Evaluate(t *testing.T) {
	uc := usecase.NewEvaluateUseCase(zap.NewNop())

	t.Run("success", func(t *testing.T) {
		payload, err := uc.Evaluate(dto.EvaluateRequest{
			Tags: map[string]string{
				"diet:vegan": "only",
				"cuisine":    "vegan",
			},
		})

		require.NoError(t, err)
		require.NotNil(t, payload)
		assert.True(t, payload.Eligible)
		assert.Equal(t, domain.DietVeganOnly, payload.Classification)
		require.NotNil(t, payload.Attributes.Cuisine)
		assert.Equal(t, "vegan", *payload.Attributes.Cuisine)
	})

	t.Run("nil tag map is rejected", func(t *testing.T) {
		payload, err := uc.Evaluate(dto.EvaluateRequest{Tags: nil})

		assert.Nil(t, payload)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrInvalidTagSet.Code, appErr.Code)
	})

	t.Run("empty tag map is valid input", func(t *testing.T) {
		payload, err := uc.Evaluate(dto.EvaluateRequest{Tags: map[string]string{}})

		require.NoError(t, err)
		assert.False(t, payload.Eligible)
		assert.Equal(t, domain.DietNone, payload.Classification)
	})
}

func TestEvaluateUseCase_EvaluateBatch(t *testing.T) {
	uc := usecase.NewEvaluateUseCase(zap.NewNop())

	t.Run("order is preserved", func(t *testing.T) {
		resp, err := uc.EvaluateBatch(dto.EvaluateBatchRequest{
			Places: []dto.EvaluateRequest{
				{Tags: map[string]string{"diet:vegan": "only"}},
				{Tags: map[string]string{"cuisine": "italian"}},
				{Tags: map[string]string{"diet:vegetarian": "yes"}},
			},
		})

		require.NoError(t, err)
		require.Equal(t, 3, resp.Total)
		assert.Equal(t, domain.DietVeganOnly, resp.Payloads[0].Classification)
		assert.Equal(t, domain.DietNone, resp.Payloads[1].Classification)
		assert.Equal(t, domain.DietVegetarianYes, resp.Payloads[2].Classification)
	})

	t.Run("nil map fails the whole batch with index", func(t *testing.T) {
		resp, err := uc.EvaluateBatch(dto.EvaluateBatchRequest{
			Places: []dto.EvaluateRequest{
				{Tags: map[string]string{"diet:vegan": "only"}},
				{Tags: nil},
			},
		})

		assert.Nil(t, resp)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.ErrInvalidTagSet.Code, appErr.Code)
		assert.Equal(t, 1, appErr.Details["index"])
	})

	t.Run("sentinel error is not mutated by batch details", func(t *testing.T) {
		_, err := uc.EvaluateBatch(dto.EvaluateBatchRequest{
			Places: []dto.EvaluateRequest{{Tags: nil}},
		})
		require.Error(t, err)

		assert.Empty(t, errors.ErrInvalidTagSet.Details)
	})
}
