package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/payment-engine/internal/domain"
	"github.com/api-sage/payment-engine/internal/usecase"
)

func TestDisputeTrackerStatus(t *testing.T) {
	t.Run("unknown id has unknown status", func(t *testing.T) {
		tracker := usecase.NewDisputeTracker()
		assert.Equal(t, domain.DisputeStateUnknown, tracker.StatusOf(42))
	})

	t.Run("recorded deposit starts normal", func(t *testing.T) {
		tracker := usecase.NewDisputeTracker()
		tracker.RecordDeposit(1, 1000, 7)
		assert.Equal(t, domain.DisputeStateNormal, tracker.StatusOf(1))

		amount, client, ok := tracker.DepositOf(1)
		require.True(t, ok)
		assert.Equal(t, domain.Amount(1000), amount)
		assert.Equal(t, domain.ClientID(7), client)
	})

	t.Run("consumed withdrawal ids are seen but never disputable", func(t *testing.T) {
		tracker := usecase.NewDisputeTracker()
		tracker.MarkConsumed(2)
		assert.True(t, tracker.Seen(2))
		assert.Equal(t, domain.DisputeStateUnknown, tracker.StatusOf(2))
		assert.ErrorIs(t, tracker.MarkDisputed(2), domain.ErrUnknownTransaction)
	})
}

func TestDisputeTrackerTransitions(t *testing.T) {
	t.Run("normal can only be disputed", func(t *testing.T) {
		tracker := usecase.NewDisputeTracker()
		tracker.RecordDeposit(1, 1000, 1)

		assert.ErrorIs(t, tracker.MarkResolved(1), domain.ErrInvalidTransition)
		assert.ErrorIs(t, tracker.MarkChargedBack(1), domain.ErrInvalidTransition)
		require.NoError(t, tracker.MarkDisputed(1))
		assert.Equal(t, domain.DisputeStateDisputed, tracker.StatusOf(1))
	})

	t.Run("disputed can resolve", func(t *testing.T) {
		tracker := usecase.NewDisputeTracker()
		tracker.RecordDeposit(1, 1000, 1)
		require.NoError(t, tracker.MarkDisputed(1))

		assert.ErrorIs(t, tracker.MarkDisputed(1), domain.ErrInvalidTransition)
		require.NoError(t, tracker.MarkResolved(1))
		assert.Equal(t, domain.DisputeStateResolved, tracker.StatusOf(1))
	})

	t.Run("disputed can charge back", func(t *testing.T) {
		tracker := usecase.NewDisputeTracker()
		tracker.RecordDeposit(1, 1000, 1)
		require.NoError(t, tracker.MarkDisputed(1))
		require.NoError(t, tracker.MarkChargedBack(1))
		assert.Equal(t, domain.DisputeStateChargedBack, tracker.StatusOf(1))
	})

	t.Run("resolved and charged back are terminal", func(t *testing.T) {
		tracker := usecase.NewDisputeTracker()
		tracker.RecordDeposit(1, 1000, 1)
		require.NoError(t, tracker.MarkDisputed(1))
		require.NoError(t, tracker.MarkResolved(1))

		assert.ErrorIs(t, tracker.MarkDisputed(1), domain.ErrInvalidTransition)
		assert.ErrorIs(t, tracker.MarkResolved(1), domain.ErrInvalidTransition)
		assert.ErrorIs(t, tracker.MarkChargedBack(1), domain.ErrInvalidTransition)

		tracker.RecordDeposit(2, 1000, 1)
		require.NoError(t, tracker.MarkDisputed(2))
		require.NoError(t, tracker.MarkChargedBack(2))

		assert.ErrorIs(t, tracker.MarkDisputed(2), domain.ErrInvalidTransition)
		assert.ErrorIs(t, tracker.MarkResolved(2), domain.ErrInvalidTransition)
		assert.ErrorIs(t, tracker.MarkChargedBack(2), domain.ErrInvalidTransition)
	})
}
