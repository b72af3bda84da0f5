package orderrepo

import (
	"context"
	"errors"

	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
	"stockyard/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = pq.ErrorCode("23505")

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its lines and notes.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("order id "+aggregate.ID().String()+" already exists", err)
		}
		return err
	}

	return nil
}

// Update saves the mutable state of an existing order. Lines never change
// after submission; notes are append-only.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if len(dto.Notes) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Notes).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves pending and in-progress orders, oldest first.
func (r *GormOrderRepository) GetAllOpen(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withChildren(ctx).
		Where("status IN ?", []int{int(order.Pending), int(order.InProgress)}).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
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

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("product_id") }).
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}
