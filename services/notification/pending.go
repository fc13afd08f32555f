package notification

import (
	"fmt"

	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"
)

// PendingItem is one entry of the operator's pending-notification queue.
// It is derived, never stored: a freight with a driver, in IN_TRANSIT or
// DELIVERED, whose current (id, status) pair has no ledger entry yet.
type PendingItem struct {
	ID          string                     `json:"id"` // "<freightID>_<status>"
	FreightID   uint                       `json:"freight_id"`
	Status      freightModel.FreightStatus `json:"status"`
	Type        string                     `json:"type"` // pickup | delivery
	Description string                     `json:"description"`
}

// Service derives the pending queue against a Ledger.
type Service struct {
	Ledger Ledger
}

func NewService(ledger Ledger) *Service {
	return &Service{Ledger: ledger}
}

// PendingItems scans the given freights in order. Freights without a
// driver never appear, regardless of status.
func (s *Service) PendingItems(freights []freightModel.Freight) ([]PendingItem, error) {
	items := make([]PendingItem, 0)

	for i := range freights {
		f := &freights[i]
		if !f.HasDriver() {
			continue
		}

		var itemType, description string
		switch f.Status {
		case freightModel.FreightStatusInTransit:
			itemType = "pickup"
			description = fmt.Sprintf("Frete #%d: Confirmar Coleta", f.ID)
		case freightModel.FreightStatusDelivered:
			itemType = "delivery"
			description = fmt.Sprintf("Frete #%d: Confirmar Entrega", f.ID)
		default:
			continue
		}

		notified, err := s.Ledger.HasNotified(f.ID, f.Status)
		if err != nil {
			return nil, err
		}
		if notified {
			continue
		}

		items = append(items, PendingItem{
			ID:          fmt.Sprintf("%d_%s", f.ID, f.Status),
			FreightID:   f.ID,
			Status:      f.Status,
			Type:        itemType,
			Description: description,
		})
	}

	return items, nil
}
