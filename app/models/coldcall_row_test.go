package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidBroadcast(t *testing.T) {
	assert.True(t, ValidBroadcast(""))
	assert.True(t, ValidBroadcast(BROADCAST_YES))
	assert.True(t, ValidBroadcast(BROADCAST_NO))
	assert.False(t, ValidBroadcast("maybe"))
	assert.False(t, ValidBroadcast("yes"))
}

func TestValidCallStatus(t *testing.T) {
	assert.True(t, ValidCallStatus(""))
	assert.True(t, ValidCallStatus(CALL_STATUS_DONE))
	assert.True(t, ValidCallStatus(CALL_STATUS_PENDING))
	assert.True(t, ValidCallStatus(CALL_STATUS_NOT_WORKING))
	assert.False(t, ValidCallStatus("DONE"))
	assert.False(t, ValidCallStatus("unknown"))
}
