// Package notification keeps the dedup ledger of client alerts already
// sent and derives the operator's pending-action queue from it.
package notification

import (
	"errors"

	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"
	notificationModel "github.com/kodraiti-design/eagles-transportes/models/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger is the durable record of (freight, status) pairs already
// notified. Marking is idempotent and entries never expire; the only
// un-mark is an explicit per-freight reset.
type Ledger interface {
	HasNotified(freightID uint, status freightModel.FreightStatus) (bool, error)
	MarkNotified(freightID uint, status freightModel.FreightStatus, actor string) error
	ResetFreight(freightID uint) error
}

// GormLedger stores ledger entries in the notification_ledger table with a
// unique (freight_id, status) index.
type GormLedger struct {
	DB *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{DB: db}
}

func (l *GormLedger) HasNotified(freightID uint, status freightModel.FreightStatus) (bool, error) {
	var entry notificationModel.LedgerEntry
	err := l.DB.Where("freight_id = ? AND status = ?", freightID, status).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *GormLedger) MarkNotified(freightID uint, status freightModel.FreightStatus, actor string) error {
	entry := notificationModel.LedgerEntry{
		FreightID: freightID,
		Status:    status,
		CreatedBy: actor,
	}
	// Conflict on the composite key means the pair is already marked.
	return l.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
}

func (l *GormLedger) ResetFreight(freightID uint) error {
	return l.DB.Where("freight_id = ?", freightID).Delete(&notificationModel.LedgerEntry{}).Error
}
