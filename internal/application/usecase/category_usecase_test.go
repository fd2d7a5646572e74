package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
	"github.com/jhoicas/repuestos-api/internal/domain"
)

func TestCategoryCreate_NombreObligatorio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(dto.CategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryCreate_AsignaID(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	desc := "Sistema de frenado"
	out, err := uc.Create(dto.CategoryRequest{Name: "Frenos", Description: &desc})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "Frenos", out.Name)
}

func TestCategoryUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	out, err := uc.Update(99, dto.CategoryRequest{Name: "Frenos"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCategoryDelete(t *testing.T) {
	repo := newFakeCategoryRepo(testCategory())
	uc := usecase.NewCategoryUseCase(repo)

	deleted, err := uc.Delete(1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = uc.Delete(1)
	require.NoError(t, err)
	assert.False(t, deleted)
}
