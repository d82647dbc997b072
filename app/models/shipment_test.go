package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTrackingCode(t *testing.T) {
	code := NewTrackingCode()
	assert.True(t, strings.HasPrefix(code, "OCL-"))
	assert.Len(t, code, 12)

	// No two consecutive codes should collide.
	assert.NotEqual(t, code, NewTrackingCode())
}

func TestSetStatus_DeliveredStampsOnce(t *testing.T) {
	s := &Shipment{Status: SHIPMENT_TRANSIT}

	first := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	s.SetStatus(SHIPMENT_DELIVERED, first)
	if assert.NotNil(t, s.DeliveredAt) {
		assert.Equal(t, first, *s.DeliveredAt)
	}

	s.SetStatus(SHIPMENT_DELIVERED, first.Add(time.Hour))
	assert.Equal(t, first, *s.DeliveredAt)
}

func TestValidShipmentStatus(t *testing.T) {
	for _, v := range []string{SHIPMENT_BOOKED, SHIPMENT_TRANSIT, SHIPMENT_DELIVERED, SHIPMENT_RETURNED} {
		assert.True(t, ValidShipmentStatus(v), v)
	}
	assert.False(t, ValidShipmentStatus("lost"))
	assert.False(t, ValidShipmentStatus(""))
}
