package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLateFee(t *testing.T) {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, LateFee(due, due), "same-moment return is free")
	assert.Equal(t, 0, LateFee(due, due.AddDate(0, 0, -3)), "early return is free")
	assert.Equal(t, 0, LateFee(due, due.Add(12*time.Hour)), "partial day rounds down")
	assert.Equal(t, LateFeePerDay, LateFee(due, due.AddDate(0, 0, 1)))
	assert.Equal(t, 7*LateFeePerDay, LateFee(due, due.AddDate(0, 0, 7)))
}
