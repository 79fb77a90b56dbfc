package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingTransitions(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		r := &Reservation{Status: ReservationStatusPending}
		state := GetReservationState(r.Status)
		require.NoError(t, state.Confirm(r))
		assert.Equal(t, ReservationStatusConfirmed, r.Status)
	})

	t.Run("cancel", func(t *testing.T) {
		r := &Reservation{Status: ReservationStatusPending}
		state := GetReservationState(r.Status)
		require.NoError(t, state.Cancel(r))
		assert.Equal(t, ReservationStatusCancelled, r.Status)
	})
}

func TestConfirmedTransitions(t *testing.T) {
	t.Run("cancel succeeds", func(t *testing.T) {
		r := &Reservation{Status: ReservationStatusConfirmed}
		state := GetReservationState(r.Status)
		require.NoError(t, state.Cancel(r))
		assert.Equal(t, ReservationStatusCancelled, r.Status)
	})

	t.Run("re-confirm fails", func(t *testing.T) {
		r := &Reservation{Status: ReservationStatusConfirmed}
		state := GetReservationState(r.Status)
		assert.Error(t, state.Confirm(r))
		assert.Equal(t, ReservationStatusConfirmed, r.Status)
	})
}

func TestCancelledIsTerminal(t *testing.T) {
	r := &Reservation{Status: ReservationStatusCancelled}
	state := GetReservationState(r.Status)

	assert.Error(t, state.Confirm(r))
	assert.Equal(t, ReservationStatusCancelled, r.Status)

	assert.Error(t, state.Cancel(r))
	assert.Equal(t, ReservationStatusCancelled, r.Status)
}

func TestUnknownStatusDefaultsToPending(t *testing.T) {
	r := &Reservation{Status: 42}
	state := GetReservationState(r.Status)
	require.NoError(t, state.Confirm(r))
	assert.Equal(t, ReservationStatusConfirmed, r.Status)
}
