package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cukportal_backend/internals/constants"
	leaveModel "cukportal_backend/internals/features/academics/leaves/model"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		decision string
		want     string
		wantErr  bool
	}{
		{"approve pending", constants.LeavePending, DecisionApprove, constants.LeaveApproved, false},
		{"reject pending", constants.LeavePending, DecisionReject, constants.LeaveRejected, false},
		{"approve approved", constants.LeaveApproved, DecisionApprove, "", true},
		{"reject approved", constants.LeaveApproved, DecisionReject, "", true},
		{"approve rejected", constants.LeaveRejected, DecisionApprove, "", true},
		{"unknown decision", constants.LeavePending, "escalate", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.decision)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransitionTerminalStatesReturnTransitionError(t *testing.T) {
	_, err := Transition(constants.LeaveApproved, DecisionReject)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, constants.LeaveApproved, te.Current)
}

func TestApplyReview(t *testing.T) {
	reviewer := uuid.New()
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	reason := "overlaps exam week"

	t.Run("reject stores the reason", func(t *testing.T) {
		mo := leaveModel.LeaveApplicationModel{Status: constants.LeavePending}
		ApplyReview(&mo, constants.LeaveRejected, reviewer, &reason, at)

		assert.Equal(t, constants.LeaveRejected, mo.Status)
		require.NotNil(t, mo.RejectionReason)
		assert.Equal(t, reason, *mo.RejectionReason)
		require.NotNil(t, mo.ReviewedBy)
		assert.Equal(t, reviewer, *mo.ReviewedBy)
		require.NotNil(t, mo.ReviewedAt)
		assert.Equal(t, at, *mo.ReviewedAt)
	})

	t.Run("approve ignores the reason", func(t *testing.T) {
		mo := leaveModel.LeaveApplicationModel{Status: constants.LeavePending}
		ApplyReview(&mo, constants.LeaveApproved, reviewer, &reason, at)

		assert.Equal(t, constants.LeaveApproved, mo.Status)
		assert.Nil(t, mo.RejectionReason)
	})

	t.Run("reject with no reason is allowed", func(t *testing.T) {
		mo := leaveModel.LeaveApplicationModel{Status: constants.LeavePending}
		ApplyReview(&mo, constants.LeaveRejected, reviewer, nil, at)
		assert.Nil(t, mo.RejectionReason)
	})
}

func TestComputeStats(t *testing.T) {
	rows := []leaveModel.LeaveApplicationModel{
		{Status: constants.LeavePending},
		{Status: constants.LeavePending},
		{Status: constants.LeaveApproved},
		{Status: constants.LeaveRejected},
	}

	s := ComputeStats(rows)
	assert.Equal(t, Stats{Pending: 2, Approved: 1, Rejected: 1, Total: 4}, s)

	assert.Equal(t, Stats{}, ComputeStats(nil))
}
