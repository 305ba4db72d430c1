// Package orderrepo persists the order mirror the boards read from.
// This package implements the repository pattern for the order domain
// aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed by category and form owner because every board
// read filters on them.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FormOwnerID uuid.UUID `gorm:"type:uuid;index"`
	Category    int       `gorm:"index"`
	Stage       string
	Items       []byte `gorm:"type:jsonb"`
	TotalCents  int64
	SubmittedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// lineItemDTO is the JSON shape of one purchased item inside the Items
// column.
type lineItemDTO struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(o *order.Order) (OrderDTO, error) {
	items := make([]lineItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, lineItemDTO{
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		FormOwnerID: o.FormOwnerID().Bytes(),
		Category:    int(o.Category()),
		Stage:       string(o.CurrentStage()),
		Items:       rawItems,
		TotalCents:  o.Total().Cents(),
		SubmittedAt: o.SubmittedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so the stored stage is validated against the category's
// pipeline.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	formOwnerID, err := kernel.UUIDFromBytes(dto.FormOwnerID[:])
	if err != nil {
		return nil, err
	}

	var rawItems []lineItemDTO
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
			return nil, err
		}
	}

	items := make([]order.LineItem, 0, len(rawItems))
	for _, raw := range rawItems {
		price, priceErr := kernel.NewMoney(raw.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewLineItem(raw.Name, raw.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, formOwnerID, order.Category(dto.Category),
		stage.ID(dto.Stage), items, total, dto.SubmittedAt,
	)
}
