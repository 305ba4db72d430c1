package redisfeed

import (
	"fmt"
	"time"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/domain/model/stage"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// eventDTO is the wire shape of one push event:
//
//	{"action": "update", "order": {...}}
//	{"action": "delete", "orderId": "..."}
type eventDTO struct {
	Action  string    `json:"action"`
	Order   *orderDTO `json:"order,omitempty"`
	OrderID string    `json:"orderId,omitempty"`
}

type orderDTO struct {
	ID          string        `json:"id"`
	FormOwnerID string        `json:"formOwnerId"`
	Category    string        `json:"category"`
	Stage       string        `json:"stage"`
	Items       []lineItemDTO `json:"items"`
	TotalCents  int64         `json:"totalCents"`
	SubmittedAt time.Time     `json:"submittedAt"`
}

type lineItemDTO struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

func (dto eventDTO) toDomain() (ports.OrderEvent, error) {
	action, err := actionFromWire(dto.Action)
	if err != nil {
		return ports.OrderEvent{}, err
	}

	if action == ports.ActionDeleted {
		id, idErr := kernel.UUIDFromString(dto.OrderID)
		if idErr != nil {
			return ports.OrderEvent{}, idErr
		}
		return ports.NewOrderEvent(action, nil, id)
	}

	if dto.Order == nil {
		return ports.OrderEvent{}, errs.NewValueIsRequiredError("event order")
	}

	o, err := dto.Order.toDomain()
	if err != nil {
		return ports.OrderEvent{}, err
	}
	return ports.NewOrderEvent(action, o, o.ID())
}

func (dto orderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	formOwnerID, err := kernel.UUIDFromString(dto.FormOwnerID)
	if err != nil {
		return nil, err
	}

	category, err := order.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, raw := range dto.Items {
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
		id, formOwnerID, category,
		stage.ID(dto.Stage), items, total, dto.SubmittedAt,
	)
}

func actionFromWire(s string) (ports.EventAction, error) {
	switch s {
	case "create":
		return ports.ActionCreated, nil
	case "update":
		return ports.ActionUpdated, nil
	case "delete":
		return ports.ActionDeleted, nil
	default:
		return ports.ActionUnknown, errs.NewValueIsInvalidErrorWithCause(
			"event action",
			fmt.Errorf("%q is not a known action", s),
		)
	}
}
