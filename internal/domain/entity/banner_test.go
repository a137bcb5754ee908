package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBanner_Expired(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, (&Banner{EndDate: "2024-06-14"}).Expired(now))
	assert.False(t, (&Banner{EndDate: "2024-06-15"}).Expired(now), "end date is inclusive")
	assert.False(t, (&Banner{EndDate: "2024-06-16"}).Expired(now))
	assert.False(t, (&Banner{}).Expired(now), "no end date never expires")
}

func TestEligibleBanners(t *testing.T) {
	banners := []*Banner{
		{ID: "1", Active: true},
		{ID: "2", Active: false},
		{ID: "3", Active: true},
	}

	eligible := EligibleBanners(banners)
	assert.Len(t, eligible, 2)
	assert.Equal(t, "1", eligible[0].ID)
	assert.Equal(t, "3", eligible[1].ID)
}

func TestRotator_RoundRobin(t *testing.T) {
	r := NewRotator(3)
	assert.Equal(t, 0, r.Index())

	r.Tick()
	assert.Equal(t, 1, r.Index())
	r.Tick()
	assert.Equal(t, 2, r.Index())
	r.Tick()
	assert.Equal(t, 0, r.Index(), "wraps around")
}

func TestRotator_ManualNavigation(t *testing.T) {
	r := NewRotator(4)

	r.Jump(2)
	assert.Equal(t, 2, r.Index())

	r.Prev()
	assert.Equal(t, 1, r.Index())

	r.Prev()
	r.Prev()
	assert.Equal(t, 3, r.Index(), "prev wraps backward")

	// the dwell timer keeps running after manual navigation
	r.Tick()
	assert.Equal(t, 0, r.Index())

	r.Jump(9)
	assert.Equal(t, 0, r.Index(), "out-of-range jump ignored")
}

func TestRotator_ControlsVisibility(t *testing.T) {
	assert.False(t, NewRotator(0).ShowsControls())
	assert.False(t, NewRotator(1).ShowsControls())
	assert.True(t, NewRotator(2).ShowsControls())

	// empty rotator tolerates ticks
	r := NewRotator(0)
	r.Tick()
	r.Prev()
	assert.Equal(t, 0, r.Index())
}
