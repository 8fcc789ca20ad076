package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/stocklight/stocklight-backend/pkg/db"
	"github.com/stocklight/stocklight-backend/pkg/db/models"
	pkgerrors "github.com/stocklight/stocklight-backend/pkg/errors"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 255
)

// Service exposes item registry operations.
type Service interface {
	List(ctx context.Context) ([]ItemDTO, error)
	Get(ctx context.Context, id int64) (*ItemDTO, error)
	Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error)
	Remove(ctx context.Context, id int64) error
}

type service struct {
	repo *Repository
	now  func() time.Time
}

// NewService constructs an item registry service. A nil clock defaults to UTC
// wall time; tests inject a fixed clock.
func NewService(repo *Repository, now func() time.Time) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{repo: repo, now: now}, nil
}

func (s *service) List(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing items")
	}
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos, nil
}

// Get returns the item or (nil, nil) when absent; absence is not an error at
// this layer, callers decide.
func (s *service) Get(ctx context.Context, id int64) (*ItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}
	return FromModel(item), nil
}

func (s *service) Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item name is required")
	}
	if len(name) > maxNameLen {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("item name exceeds %d characters", maxNameLen))
	}
	if input.Description != nil && len(*input.Description) > maxDescriptionLen {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("description exceeds %d characters", maxDescriptionLen))
	}
	if input.LowStockThreshold < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "low stock threshold must not be negative")
	}

	// Quantity is pinned to zero no matter what the caller sent upstream;
	// stock only enters through the adjustment engine.
	item := &models.InventoryItem{
		Name:              name,
		Description:       input.Description,
		Quantity:          0,
		LowStockThreshold: input.LowStockThreshold,
		LastUpdated:       s.now(),
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if db.IsUniqueViolation(err, "idx_inventory_items_name") || db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, fmt.Sprintf("item name %q already exists", name))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating item")
	}
	return FromModel(created), nil
}

func (s *service) Remove(ctx context.Context, id int64) error {
	removed, err := s.repo.DeleteIfEmpty(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing item")
	}
	if removed > 0 {
		return nil
	}

	// Nothing was deleted: either the item is unknown or it still holds stock.
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("item %d not found", id))
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "removing item")
	}
	return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot remove item with remaining stock").
		WithDetails(map[string]any{"quantity": item.Quantity})
}
