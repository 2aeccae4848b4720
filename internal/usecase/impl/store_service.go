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

type storeService struct {
	storeRepo     repository.StoreRepository
	inventoryRepo repository.InventoryRepository
}

// NewStoreService creates a new store service instance
func NewStoreService(
	storeRepo repository.StoreRepository,
	inventoryRepo repository.InventoryRepository,
) usecase.StoreUsecase {
	return &storeService{
		storeRepo:     storeRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *storeService) Create(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	store := &entity.Store{
		Name:     input.Name,
		Location: input.Location,
	}

	if _, err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

func (s *storeService) GetByID(ctx context.Context, id string, populate bool) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, fmt.Errorf("failed to find store by ID: %w", err)
	}

	if populate {
		records, err := s.inventoryRepo.FindAll(ctx, repository.ListQuery{}.WithFilter("storeId", id))
		if err != nil {
			return nil, fmt.Errorf("failed to list store inventory: %w", err)
		}
		store.Inventory = records
	}

	return store, nil
}

func (s *storeService) List(ctx context.Context, filter usecase.StoreListFilter) ([]*entity.Store, error) {
	query := repository.ListQuery{Limit: filter.Limit}
	if filter.Location != "" {
		query = query.WithFilter("location", filter.Location)
	}

	stores, err := s.storeRepo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	return stores, nil
}

func (s *storeService) Update(ctx context.Context, id string, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	if _, err := s.storeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, fmt.Errorf("failed to find store by ID: %w", err)
	}

	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}

	if err := s.storeRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	updated, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find store by ID: %w", err)
	}

	return updated, nil
}

func (s *storeService) Delete(ctx context.Context, id string) error {
	if _, err := s.storeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return fmt.Errorf("failed to find store by ID: %w", err)
	}

	if err := s.storeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	return nil
}
