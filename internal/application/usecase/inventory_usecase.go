package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
)

// InventoryUseCase consulta y ajuste de insumos. El alta (con número INV) va por el Registrar.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	now  func() time.Time
}

func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, now: time.Now}
}

// List por categoría; con lowStock=true solo los insumos en o bajo el mínimo.
func (uc *InventoryUseCase) List(ctx context.Context, in dto.InventoryFilterRequest) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.List(ctx, entity.InventoryFilter{
		Category: entity.NormalizeLabel(in.Category),
		LowStock: in.LowStock,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromInventoryItems(items), nil
}

func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromInventoryItem(item)
	return &out, nil
}

// Update actualización parcial. Si la cantidad sube se registra la fecha de reabastecimiento.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	if in.ItemName != nil {
		if strings.TrimSpace(*in.ItemName) == "" {
			return nil, invalid("itemName no puede quedar vacío")
		}
		item.ItemName = strings.TrimSpace(*in.ItemName)
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, invalid("category no puede quedar vacío")
		}
		item.Category = entity.NormalizeLabel(*in.Category)
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, invalid("quantity no puede ser negativo")
		}
		if in.Quantity.GreaterThan(item.Quantity) && in.LastRestocked == nil {
			today := entity.StartOfDay(now)
			item.LastRestocked = &today
		}
		item.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, invalid("minStock no puede ser negativo")
		}
		item.MinStock = *in.MinStock
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, invalid("unitPrice no puede ser negativo")
		}
		item.UnitPrice = in.UnitPrice
	}
	if in.Supplier != nil {
		item.Supplier = *in.Supplier
	}
	if in.LastRestocked != nil {
		item.LastRestocked = in.LastRestocked.TimePtr()
	}
	if in.ExpiryDate != nil {
		item.ExpiryDate = in.ExpiryDate.TimePtr()
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	item.UpdatedAt = now
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	out := dto.FromInventoryItem(item)
	return &out, nil
}
