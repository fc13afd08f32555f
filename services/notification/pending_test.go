package notification

import (
	"fmt"
	"testing"

	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger keeps marks in a map shared through a pointer, so a second
// fakeLedger built over the same map behaves like a reopened store.
type fakeLedger struct {
	marks map[string]string // key -> actor
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{marks: make(map[string]string)}
}

func ledgerKey(freightID uint, status freightModel.FreightStatus) string {
	return fmt.Sprintf("%d_%s", freightID, status)
}

func (l *fakeLedger) HasNotified(freightID uint, status freightModel.FreightStatus) (bool, error) {
	_, ok := l.marks[ledgerKey(freightID, status)]
	return ok, nil
}

func (l *fakeLedger) MarkNotified(freightID uint, status freightModel.FreightStatus, actor string) error {
	key := ledgerKey(freightID, status)
	if _, exists := l.marks[key]; exists {
		return nil // first writer wins, like the conflict clause
	}
	l.marks[key] = actor
	return nil
}

func (l *fakeLedger) ResetFreight(freightID uint) error {
	for _, status := range freightModel.GetAllFreightStatuses() {
		delete(l.marks, ledgerKey(freightID, status))
	}
	return nil
}

func withDriver(id uint, status freightModel.FreightStatus) freightModel.Freight {
	driverID := uint(7)
	return freightModel.Freight{ID: id, Status: status, DriverID: &driverID}
}

func withoutDriver(id uint, status freightModel.FreightStatus) freightModel.Freight {
	return freightModel.Freight{ID: id, Status: status}
}

func TestPendingItemsOnlyTransitAndDelivered(t *testing.T) {
	svc := NewService(newFakeLedger())

	freights := []freightModel.Freight{
		withDriver(1, freightModel.FreightStatusQuoted),
		withDriver(2, freightModel.FreightStatusRecruiting),
		withDriver(3, freightModel.FreightStatusAssigned),
		withDriver(4, freightModel.FreightStatusInTransit),
		withDriver(5, freightModel.FreightStatusDelivered),
		withDriver(6, freightModel.FreightStatusRejected),
	}

	items, err := svc.PendingItems(freights)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "4_IN_TRANSIT", items[0].ID)
	assert.Equal(t, "pickup", items[0].Type)
	assert.Equal(t, "Frete #4: Confirmar Coleta", items[0].Description)

	assert.Equal(t, "5_DELIVERED", items[1].ID)
	assert.Equal(t, "delivery", items[1].Type)
	assert.Equal(t, "Frete #5: Confirmar Entrega", items[1].Description)
}

func TestPendingItemsSkipsDriverlessFreights(t *testing.T) {
	svc := NewService(newFakeLedger())

	items, err := svc.PendingItems([]freightModel.Freight{
		withoutDriver(10, freightModel.FreightStatusInTransit),
		withoutDriver(11, freightModel.FreightStatusDelivered),
	})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMarkRemovesItemFromQueue(t *testing.T) {
	ledger := newFakeLedger()
	svc := NewService(ledger)
	freights := []freightModel.Freight{withDriver(42, freightModel.FreightStatusInTransit)}

	items, err := svc.PendingItems(freights)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, ledger.MarkNotified(42, freightModel.FreightStatusInTransit, "maria"))

	items, err = svc.PendingItems(freights)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStatusAdvanceReopensQueue(t *testing.T) {
	ledger := newFakeLedger()
	svc := NewService(ledger)

	require.NoError(t, ledger.MarkNotified(42, freightModel.FreightStatusInTransit, "maria"))

	// The delivery alert for the same freight is a distinct ledger key.
	items, err := svc.PendingItems([]freightModel.Freight{
		withDriver(42, freightModel.FreightStatusDelivered),
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "42_DELIVERED", items[0].ID)
}

func TestMarkNotifiedIsIdempotent(t *testing.T) {
	ledger := newFakeLedger()

	require.NoError(t, ledger.MarkNotified(42, freightModel.FreightStatusInTransit, "maria"))
	require.NoError(t, ledger.MarkNotified(42, freightModel.FreightStatusInTransit, "jose"))

	assert.Equal(t, "maria", ledger.marks["42_IN_TRANSIT"])
}

func TestMarksSurviveServiceRestart(t *testing.T) {
	shared := newFakeLedger()
	require.NoError(t, shared.MarkNotified(42, freightModel.FreightStatusInTransit, "maria"))

	// A fresh Service over the same store must still see the mark.
	reopened := NewService(&fakeLedger{marks: shared.marks})
	items, err := reopened.PendingItems([]freightModel.Freight{
		withDriver(42, freightModel.FreightStatusInTransit),
	})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestResetFreightReopensAlerts(t *testing.T) {
	ledger := newFakeLedger()
	svc := NewService(ledger)

	require.NoError(t, ledger.MarkNotified(42, freightModel.FreightStatusInTransit, "maria"))
	require.NoError(t, ledger.MarkNotified(42, freightModel.FreightStatusDelivered, "maria"))
	require.NoError(t, ledger.MarkNotified(50, freightModel.FreightStatusInTransit, "jose"))

	require.NoError(t, ledger.ResetFreight(42))

	items, err := svc.PendingItems([]freightModel.Freight{
		withDriver(42, freightModel.FreightStatusDelivered),
		withDriver(50, freightModel.FreightStatusInTransit),
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "42_DELIVERED", items[0].ID)
}
