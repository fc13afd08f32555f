package freight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreightStatusIsValid(t *testing.T) {
	for _, status := range GetAllFreightStatuses() {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}
	assert.False(t, FreightStatus("LOADING").IsValid())
	assert.False(t, FreightStatus("").IsValid())
	assert.False(t, FreightStatus("delivered").IsValid())
}

func TestSequentialTransitions(t *testing.T) {
	tests := []struct {
		from    FreightStatus
		to      FreightStatus
		allowed bool
	}{
		{FreightStatusQuoted, FreightStatusRecruiting, true},
		{FreightStatusQuoted, FreightStatusAssigned, true},
		{FreightStatusQuoted, FreightStatusRejected, true},
		{FreightStatusQuoted, FreightStatusInTransit, false},
		{FreightStatusQuoted, FreightStatusDelivered, false},

		{FreightStatusRecruiting, FreightStatusAssigned, true},
		{FreightStatusRecruiting, FreightStatusRejected, true},
		{FreightStatusRecruiting, FreightStatusQuoted, false},
		{FreightStatusRecruiting, FreightStatusDelivered, false},

		{FreightStatusAssigned, FreightStatusInTransit, true},
		{FreightStatusAssigned, FreightStatusRejected, true},
		{FreightStatusAssigned, FreightStatusDelivered, false},
		{FreightStatusAssigned, FreightStatusQuoted, false},

		{FreightStatusInTransit, FreightStatusDelivered, true},
		{FreightStatusInTransit, FreightStatusRejected, false},
		{FreightStatusInTransit, FreightStatusAssigned, false},

		// Terminal states have no sequential successors.
		{FreightStatusDelivered, FreightStatusInTransit, false},
		{FreightStatusRejected, FreightStatusQuoted, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, FreightStatusDelivered.IsTerminal())
	assert.True(t, FreightStatusRejected.IsTerminal())
	assert.False(t, FreightStatusQuoted.IsTerminal())
	assert.False(t, FreightStatusRecruiting.IsTerminal())
	assert.False(t, FreightStatusAssigned.IsTerminal())
	assert.False(t, FreightStatusInTransit.IsTerminal())
}

func TestAcceptsDriverResponse(t *testing.T) {
	assert.True(t, FreightStatusQuoted.AcceptsDriverResponse())
	assert.True(t, FreightStatusRecruiting.AcceptsDriverResponse())
	assert.False(t, FreightStatusAssigned.AcceptsDriverResponse())
	assert.False(t, FreightStatusInTransit.AcceptsDriverResponse())
	assert.False(t, FreightStatusDelivered.AcceptsDriverResponse())
	assert.False(t, FreightStatusRejected.AcceptsDriverResponse())
}

func TestPhotoPathsRoundTrip(t *testing.T) {
	var f Freight
	assert.Nil(t, f.PhotoPaths())

	paths := []string{
		"uploads/delivery_proofs/7/a.jpg",
		"uploads/delivery_proofs/7/b.jpg",
		"uploads/delivery_proofs/7/c.jpg",
	}
	assert.NoError(t, f.SetPhotoPaths(paths))
	assert.Equal(t, paths, f.PhotoPaths())

	bad := "not-json"
	f.DeliveryPhotos = &bad
	assert.Nil(t, f.PhotoPaths())
}

func TestBillingStatusIsValid(t *testing.T) {
	assert.True(t, BillingStatusPending.IsValid())
	assert.True(t, BillingStatusIssued.IsValid())
	assert.True(t, BillingStatusPaid.IsValid())
	assert.True(t, BillingStatusCancelled.IsValid())
	assert.False(t, BillingStatus("OPEN").IsValid())
}
