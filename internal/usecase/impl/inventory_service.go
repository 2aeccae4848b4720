package impl

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
	storeRepo     repository.StoreRepository
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
		storeRepo:     storeRepo,
	}
}

// Create records a stock level after verifying both referenced documents
// exist, so inventory never points at ghost products or stores.
func (s *inventoryService) Create(ctx context.Context, input *usecase.CreateInventoryInput) (*entity.Inventory, error) {
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(input.ProductID)
		}

		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if _, err := s.storeRepo.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrStoreNotFound.WithDetails(input.StoreID)
		}

		return nil, fmt.Errorf("failed to find store by ID: %w", err)
	}

	inventory := &entity.Inventory{
		ProductID: input.ProductID,
		StoreID:   input.StoreID,
		Stock:     input.Stock,
	}

	if _, err := s.inventoryRepo.Create(ctx, inventory); err != nil {
		return nil, fmt.Errorf("failed to create inventory record: %w", err)
	}

	return inventory, nil
}

func (s *inventoryService) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	inventory, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrInventoryNotFound
		}

		return nil, fmt.Errorf("failed to find inventory record by ID: %w", err)
	}

	return inventory, nil
}

func (s *inventoryService) List(ctx context.Context, filter usecase.InventoryListFilter) ([]*entity.Inventory, error) {
	query := repository.ListQuery{Limit: filter.Limit}
	if filter.ProductID != "" {
		query = query.WithFilter("productId", filter.ProductID)
	}
	if filter.StoreID != "" {
		query = query.WithFilter("storeId", filter.StoreID)
	}

	records, err := s.inventoryRepo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory records: %w", err)
	}

	return records, nil
}

func (s *inventoryService) Update(ctx context.Context, id string, input *usecase.UpdateInventoryInput) (*entity.Inventory, error) {
	if _, err := s.inventoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrInventoryNotFound
		}

		return nil, fmt.Errorf("failed to find inventory record by ID: %w", err)
	}

	fields := make(map[string]any)
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}

	if err := s.inventoryRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update inventory record: %w", err)
	}

	updated, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory record by ID: %w", err)
	}

	return updated, nil
}

func (s *inventoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.inventoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrInventoryNotFound
		}

		return fmt.Errorf("failed to find inventory record by ID: %w", err)
	}

	if err := s.inventoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete inventory record: %w", err)
	}

	return nil
}
