package orderrepo

import (
	"context"
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements the boards' OrderFetcher and
// TransitionCommitter ports using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add stores an order arriving from an order form submission.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FetchOrders returns all orders matching the filter, cancelled orders
// included, ordered by submission time then id so every refetch observes
// the same server-defined sequence.
func (r *GormOrderRepository) FetchOrders(
	ctx context.Context,
	filter ports.OrderFilter,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})
	if filter.Category != order.Unknown {
		query = query.Where("category = ?", int(filter.Category))
	}
	if filter.FormOwnerID != nil {
		query = query.Where("form_owner_id = ?", filter.FormOwnerID.Bytes())
	}

	var dtos []OrderDTO
	if err := query.Order("submitted_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CommitTransition records that the order moved to the target stage.
// The update is guarded by the form owner so a board can never move an
// order governed by a different form. Zero affected rows means the order
// is gone or re-owned, reported as ObjectNotFound.
func (r *GormOrderRepository) CommitTransition(
	ctx context.Context,
	formOwnerID, orderID kernel.UUID,
	targetStageID stage.ID,
) error {
	if err := errors.Join(formOwnerID.Validate(), orderID.Validate()); err != nil {
		return err
	}
	if targetStageID == "" {
		return errs.NewValueIsRequiredError("targetStageId")
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND form_owner_id = ?", orderID.Bytes(), formOwnerID.Bytes()).
		Update("stage", string(targetStageID))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return nil
}
