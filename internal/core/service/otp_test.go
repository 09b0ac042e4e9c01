package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port/mock"
)

// Scenario: advancing an hourly service order opens an OTP challenge, a
// short code is refused locally, a well-formed but wrong code keeps the
// challenge open with the backend's message, and the order never moves.
func TestOtpChallenge_WrongCodeKeepsChallengeOpen(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	platform := mock.NewMockPlatformClient(mockCtrl)
	order := hourlyServiceOrder("o-20", domain.OrderStatusAccepted)

	progress := newProgress(t, platform)

	result, err := progress.RequestAdvance(context.Background(), order)
	assert.NoError(t, err)
	assert.True(t, result.OTPRequired)
	assert.Equal(t, domain.OrderStatusStarted, result.Target)

	challenge, err := progress.NewChallenge(order)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusStarted, challenge.Target())

	// Local validation short-circuits, the backend never sees "123".
	_, err = challenge.Submit(context.Background(), "123")
	assert.Equal(t, domain.ErrInvalidOTP, err)
	assert.True(t, challenge.Open())

	platform.EXPECT().
		AdvanceOrder(gomock.Any(), "o-20", domain.OrderStatusStarted, "55555", "svc-1").
		Return(&domain.BackendError{Status: 400, Message: "Invalid OTP"})

	_, err = challenge.Submit(context.Background(), "55555")
	assert.EqualError(t, err, "Invalid OTP")
	assert.True(t, challenge.Open())
	assert.EqualError(t, challenge.Err(), "Invalid OTP")
	assert.Equal(t, domain.OrderStatusAccepted, order.Status)

	// Resubmission with the right code succeeds without restarting the
	// advance.
	platform.EXPECT().
		AdvanceOrder(gomock.Any(), "o-20", domain.OrderStatusStarted, "54321", "svc-1").
		Return(nil)

	updated, err := challenge.Submit(context.Background(), "54321")
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusStarted, updated.Status)
	assert.False(t, challenge.Open())
	assert.NoError(t, challenge.Err())
}

func TestOtpChallenge_ClosedAfterSuccess(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	platform := mock.NewMockPlatformClient(mockCtrl)
	order := hourlyServiceOrder("o-21", domain.OrderStatusAccepted)

	platform.EXPECT().
		AdvanceOrder(gomock.Any(), "o-21", domain.OrderStatusStarted, "12345", "svc-1").
		Return(nil)

	progress := newProgress(t, platform)
	challenge, err := progress.NewChallenge(order)
	assert.NoError(t, err)

	_, err = challenge.Submit(context.Background(), "12345")
	assert.NoError(t, err)

	_, err = challenge.Submit(context.Background(), "12345")
	assert.Equal(t, domain.ErrChallengeClosed, err)
}

func TestOtpChallenge_CancelClearsState(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	platform := mock.NewMockPlatformClient(mockCtrl)
	order := hourlyServiceOrder("o-22", domain.OrderStatusAccepted)

	progress := newProgress(t, platform)
	challenge, err := progress.NewChallenge(order)
	assert.NoError(t, err)

	_, err = challenge.Submit(context.Background(), "99")
	assert.Equal(t, domain.ErrInvalidOTP, err)
	assert.Equal(t, "99", challenge.Code())
	assert.Error(t, challenge.Err())

	assert.NoError(t, challenge.Cancel())
	assert.Empty(t, challenge.Code())
	assert.NoError(t, challenge.Err())
	assert.Equal(t, domain.OrderStatusAccepted, order.Status)

	// Reopening starts from clean input state.
	reopened, err := progress.NewChallenge(order)
	assert.NoError(t, err)
	assert.Empty(t, reopened.Code())
	assert.NoError(t, reopened.Err())
}

func TestOtpChallenge_CancelRefusedWhileWaiting(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	platform := mock.NewMockPlatformClient(mockCtrl)
	order := hourlyServiceOrder("o-23", domain.OrderStatusAccepted)

	started := make(chan struct{})
	release := make(chan struct{})
	platform.EXPECT().
		AdvanceOrder(gomock.Any(), "o-23", domain.OrderStatusStarted, "12345", "svc-1").
		DoAndReturn(func(ctx context.Context, orderID string, status domain.OrderStatus, otp, serviceID string) error {
			close(started)
			<-release
			return nil
		})

	progress := newProgress(t, platform)
	challenge, err := progress.NewChallenge(order)
	assert.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := challenge.Submit(context.Background(), "12345")
		assert.NoError(t, err)
	}()

	<-started
	assert.Equal(t, domain.ErrOtpSubmissionPending, challenge.Cancel())

	close(release)
	<-done
	assert.NoError(t, challenge.Cancel())
}

func TestNewChallenge_RejectsUngatedTransition(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	platform := mock.NewMockPlatformClient(mockCtrl)
	progress := newProgress(t, platform)

	_, err := progress.NewChallenge(productOrder("o-24", domain.OrderStatusAccepted))
	assert.Equal(t, domain.ErrOTPNotRequired, err)

	_, err = progress.NewChallenge(productOrder("o-25", domain.OrderStatusCompleted))
	assert.Equal(t, domain.ErrOrderCompleted, err)
}
