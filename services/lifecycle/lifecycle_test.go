package lifecycle

import (
	"testing"

	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"

	"github.com/stretchr/testify/assert"
)

func TestOverrideTargetIgnoresAdjacency(t *testing.T) {
	// The sequential table forbids jumping straight from QUOTED to
	// DELIVERED, but the operator override takes any valid target.
	assert.False(t, freightModel.FreightStatusQuoted.CanTransitionTo(freightModel.FreightStatusDelivered))
	assert.NoError(t, ValidateOverrideTarget(freightModel.FreightStatusDelivered))

	// Same for pulling a terminal freight back for corrections.
	assert.NoError(t, ValidateOverrideTarget(freightModel.FreightStatusQuoted))

	for _, target := range freightModel.GetAllFreightStatuses() {
		assert.NoError(t, ValidateOverrideTarget(target), "target %s", target)
	}
}

func TestOverrideTargetRejectsUnknownStatus(t *testing.T) {
	assert.ErrorIs(t, ValidateOverrideTarget("LOADING"), ErrInvalidStatus)
	assert.ErrorIs(t, ValidateOverrideTarget(""), ErrInvalidStatus)
	assert.ErrorIs(t, ValidateOverrideTarget("delivered"), ErrInvalidStatus)
}

func TestValidateRejectReason(t *testing.T) {
	assert.NoError(t, ValidateRejectReason("Veículo quebrou na estrada"))
	assert.NoError(t, ValidateRejectReason("  valor baixo  "))

	assert.ErrorIs(t, ValidateRejectReason(""), ErrEmptyReason)
	assert.ErrorIs(t, ValidateRejectReason("   "), ErrEmptyReason)
	assert.ErrorIs(t, ValidateRejectReason("\t\n"), ErrEmptyReason)
}

func TestValidatePhotoCount(t *testing.T) {
	assert.ErrorIs(t, ValidatePhotoCount(0), ErrNotEnoughPhotos)
	assert.ErrorIs(t, ValidatePhotoCount(1), ErrNotEnoughPhotos)
	assert.ErrorIs(t, ValidatePhotoCount(MinDeliveryPhotos-1), ErrNotEnoughPhotos)

	assert.NoError(t, ValidatePhotoCount(MinDeliveryPhotos))
	assert.NoError(t, ValidatePhotoCount(MinDeliveryPhotos+5))
}
