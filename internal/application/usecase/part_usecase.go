package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/inventory"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

const initialStockReason = "Initial stock"

// PartUseCase casos de uso para repuestos. La creación con stock inicial
// siembra una transacción IN dentro de la misma transacción SQL que el
// insert del repuesto (alta y primer movimiento son una unidad atómica).
type PartUseCase struct {
	repo         repository.PartRepository
	categoryRepo repository.CategoryRepository
	txRunner     inventory.TxRunner
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(
	repo repository.PartRepository,
	categoryRepo repository.CategoryRepository,
	txRunner inventory.TxRunner,
) *PartUseCase {
	return &PartUseCase{repo: repo, categoryRepo: categoryRepo, txRunner: txRunner}
}

// List devuelve todos los repuestos.
func (uc *PartUseCase) List() ([]dto.PartResponse, error) {
	list, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return toPartResponses(list), nil
}

// GetByID obtiene un repuesto; nil si no existe.
func (uc *PartUseCase) GetByID(id int64) (*dto.PartResponse, error) {
	p, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toPartResponse(p), nil
}

// Search búsqueda filtrada y paginada (página 1-indexada).
// totalPages = ceil(total / limit).
func (uc *PartUseCase) Search(in dto.SearchPartsRequest) (*dto.PaginatedPartsResponse, error) {
	in.Defaults()
	filter := repository.PartSearchFilter{
		CategoryID: in.CategoryID,
		Limit:      in.Limit,
		Offset:     (in.Page - 1) * in.Limit,
	}
	if in.Query != nil {
		filter.Query = *in.Query
	}
	if in.LowStock != nil {
		filter.LowStockOnly = *in.LowStock
	}
	list, total, err := uc.repo.Search(filter)
	if err != nil {
		return nil, err
	}
	return &dto.PaginatedPartsResponse{
		Data:       toPartResponses(list),
		Page:       in.Page,
		Limit:      in.Limit,
		Total:      total,
		TotalPages: (total + in.Limit - 1) / in.Limit,
	}, nil
}

// LowStock devuelve los repuestos con current_stock <= minimum_stock.
func (uc *PartUseCase) LowStock() ([]dto.PartResponse, error) {
	list, err := uc.repo.FindLowStock()
	if err != nil {
		return nil, err
	}
	return toPartResponses(list), nil
}

// Create crea un repuesto validando que la categoría exista. Con
// InitialStock > 0 siembra una transacción IN "Initial stock" pagada en su
// totalidad, en la misma transacción SQL.
func (uc *PartUseCase) Create(ctx context.Context, in dto.AddPartRequest) (*dto.PartResponse, error) {
	if in.Name == "" || in.PartNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 || in.MinimumStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.FindByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	now := time.Now().UTC()
	part := &entity.Part{
		Name:         in.Name,
		Description:  in.Description,
		PartNumber:   in.PartNumber,
		CategoryID:   in.CategoryID,
		CategoryName: category.Name,
		UnitPrice:    in.UnitPrice,
		CurrentStock: in.InitialStock,
		MinimumStock: in.MinimumStock,
		MaxStock:     in.MaxStock,
		Location:     in.Location,
		Supplier:     in.Supplier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.Run(ctx, func(
		partRepo repository.PartRepository,
		txRepo repository.TransactionRepository,
	) error {
		if err := partRepo.Create(part); err != nil {
			return err
		}
		if in.InitialStock == 0 {
			return nil
		}
		total := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.InitialStock)))
		reason := initialStockReason
		seed := &entity.Transaction{
			PartID:          part.ID,
			Type:            entity.TransactionTypeIN,
			Quantity:        in.InitialStock,
			UnitPrice:       &in.UnitPrice,
			TotalAmount:     &total,
			Reason:          &reason,
			IsPaid:          true,
			AmountPaid:      total,
			TransactionDate: now,
			CreatedAt:       now,
		}
		return txRepo.Create(seed)
	})
	if err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Update actualización parcial; nil si el repuesto no existe. El stock no se
// toca por aquí.
func (uc *PartUseCase) Update(id int64, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Description != nil {
		part.Description = in.Description
	}
	if in.UnitPrice != nil {
		part.UnitPrice = *in.UnitPrice
	}
	if in.MinimumStock != nil {
		part.MinimumStock = *in.MinimumStock
	}
	if in.MaxStock != nil {
		part.MaxStock = in.MaxStock
	}
	if in.Location != nil {
		part.Location = in.Location
	}
	if in.Supplier != nil {
		part.Supplier = in.Supplier
	}
	part.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete elimina un repuesto; false si no existía.
func (uc *PartUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	if p == nil {
		return nil
	}
	return &dto.PartResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		PartNumber:   p.PartNumber,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		UnitPrice:    p.UnitPrice,
		CurrentStock: p.CurrentStock,
		MinimumStock: p.MinimumStock,
		MaxStock:     p.MaxStock,
		Location:     p.Location,
		Supplier:     p.Supplier,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPartResponses(list []*entity.Part) []dto.PartResponse {
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return items
}
