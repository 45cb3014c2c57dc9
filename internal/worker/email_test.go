package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backma/internal/notify"
	"backma/internal/worker"
	"backma/pkg/logger"
	"backma/pkg/mailer"
	mockmailer "backma/pkg/mailer/mock"
	"backma/pkg/serrors"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "debug")
	m.Run()
}

func makeJob(id int64, to string) *river.Job[notify.EmailArgs] {
	return &river.Job[notify.EmailArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args: notify.EmailArgs{
			To:       to,
			Template: notify.TemplatePurchaseStatus,
			Data:     map[string]string{"Name": "Jane", "PurchaseID": "p-1", "From": "pending", "Status": "accepted"},
		},
	}
}

func to(addr string) gomock.Matcher {
	return gomock.Cond(func(msg mailer.Message) bool { return msg.To == addr })
}

func TestEmailWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmailer.NewMockClient(ctrl)
	w := worker.NewEmailWorker(mock, nil)

	rl := mailer.RateLimitStatus{Limit: 100, Remaining: 99, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg mailer.Message) (mailer.RateLimitStatus, error) {
			require.Equal(t, "a@example.com", msg.To)
			require.Equal(t, "Order p-1 is now accepted", msg.Subject)
			require.Contains(t, msg.Text, "Hello Jane")
			require.Equal(t, string(notify.TemplatePurchaseStatus), msg.Template)

			return rl, nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(1, "a@example.com")))
}

func TestEmailWorker_Work_UnknownTemplateCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worker.NewEmailWorker(mockmailer.NewMockClient(ctrl), nil)

	job := makeJob(2, "a@example.com")
	job.Args.Template = "nope"

	err := w.Work(context.Background(), job)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestEmailWorker_Work_BadRequestCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmailer.NewMockClient(ctrl)
	w := worker.NewEmailWorker(mock, nil)

	rl := mailer.RateLimitStatus{Limit: 100, Remaining: 100, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().Send(gomock.Any(), to("bad")).Return(rl, serrors.With(serrors.ErrBadRequest, "invalid recipient"))

	err := w.Work(context.Background(), makeJob(3, "bad"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestEmailWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmailer.NewMockClient(ctrl)
	w := worker.NewEmailWorker(mock, nil)

	resetAt := time.Now().Add(1500 * time.Millisecond)
	rl := mailer.RateLimitStatus{Limit: 100, Remaining: 0, ResetAt: resetAt}
	mock.EXPECT().Send(gomock.Any(), gomock.Any()).Return(rl, serrors.With(serrors.ErrRateLimited, "provider rl"))

	err := w.Work(context.Background(), makeJob(4, "a@example.com"))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.GreaterOrEqual(t, snoozeErr.Duration, 1200*time.Millisecond)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
}

func TestEmailWorker_Work_GenericErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmailer.NewMockClient(ctrl)
	w := worker.NewEmailWorker(mock, nil)

	rl := mailer.RateLimitStatus{Limit: 100, Remaining: 100, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().Send(gomock.Any(), gomock.Any()).Return(rl, errors.New("boom"))

	err := w.Work(context.Background(), makeJob(5, "a@example.com"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr)
}

func TestEmailWorker_TrialSendBlocksSecondUntilFirstFinishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmailer.NewMockClient(ctrl)
	w := worker.NewEmailWorker(mock, nil)

	firstStarted := make(chan struct{})
	allowFirstToFinish := make(chan struct{})
	secondStarted := make(chan struct{})

	mock.EXPECT().Send(gomock.Any(), to("a")).DoAndReturn(
		func(context.Context, mailer.Message) (mailer.RateLimitStatus, error) {
			close(firstStarted)
			<-allowFirstToFinish

			return mailer.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})
	mock.EXPECT().Send(gomock.Any(), to("b")).DoAndReturn(
		func(context.Context, mailer.Message) (mailer.RateLimitStatus, error) {
			close(secondStarted)

			return mailer.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, makeJob(10, "a")) }()
	<-firstStarted

	go func() { _ = w.Work(ctx, makeJob(11, "b")) }()

	select {
	case <-secondStarted:
		t.Fatal("second send started before the trial send finished")
	case <-time.After(100 * time.Millisecond):
	}

	close(allowFirstToFinish)

	select {
	case <-secondStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("second send did not start after the trial send finished")
	}
}

func TestEmailWorker_AllowsUpToRemainingConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmailer.NewMockClient(ctrl)
	w := worker.NewEmailWorker(mock, nil)

	prime := mailer.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: time.Now().Add(time.Minute)}
	mock.EXPECT().Send(gomock.Any(), to("prime")).Return(prime, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(20, "prime")))

	bStarted := make(chan struct{})
	cStarted := make(chan struct{})
	dStarted := make(chan struct{})
	finishB := make(chan struct{})
	finishC := make(chan struct{})

	mock.EXPECT().Send(gomock.Any(), to("b")).DoAndReturn(
		func(context.Context, mailer.Message) (mailer.RateLimitStatus, error) {
			close(bStarted)
			<-finishB

			return mailer.RateLimitStatus{Limit: 2, Remaining: 2, ResetAt: prime.ResetAt}, nil
		})
	mock.EXPECT().Send(gomock.Any(), to("c")).DoAndReturn(
		func(context.Context, mailer.Message) (mailer.RateLimitStatus, error) {
			close(cStarted)
			<-finishC

			return mailer.RateLimitStatus{Limit: 2, Remaining: 0, ResetAt: prime.ResetAt}, nil
		})
	mock.EXPECT().Send(gomock.Any(), to("d")).DoAndReturn(
		func(context.Context, mailer.Message) (mailer.RateLimitStatus, error) {
			close(dStarted)

			return mailer.RateLimitStatus{Limit: 2, Remaining: 1, ResetAt: prime.ResetAt}, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	go func() { _ = w.Work(ctx, makeJob(21, "b")) }()
	go func() { _ = w.Work(ctx, makeJob(22, "c")) }()

	for _, started := range []chan struct{}{bStarted, cStarted} {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("send did not start in time")
		}
	}

	go func() { _ = w.Work(ctx, makeJob(23, "d")) }()

	select {
	case <-dStarted:
		t.Fatal("d started before a slot was released")
	case <-time.After(150 * time.Millisecond):
	}

	close(finishB)

	select {
	case <-dStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("d did not start after a send finished")
	}

	close(finishC)
}

func TestEmailWorker_WaitsForReset_WhenRemainingZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmailer.NewMockClient(ctrl)
	w := worker.NewEmailWorker(mock, nil)

	resetDelay := 300 * time.Millisecond
	mock.EXPECT().Send(gomock.Any(), to("a")).
		Return(mailer.RateLimitStatus{Limit: 5, Remaining: 0, ResetAt: time.Now().Add(resetDelay)}, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(30, "a")))

	started := make(chan struct{})
	start := time.Now()
	mock.EXPECT().Send(gomock.Any(), to("b")).DoAndReturn(
		func(context.Context, mailer.Message) (mailer.RateLimitStatus, error) {
			close(started)

			return mailer.RateLimitStatus{Limit: 5, Remaining: 4, ResetAt: time.Now().Add(time.Minute)}, nil
		})

	go func() { _ = w.Work(context.Background(), makeJob(31, "b")) }()

	select {
	case <-started:
		require.GreaterOrEqual(t, time.Since(start), resetDelay-75*time.Millisecond, "send started before the reset")
	case <-time.After(2 * time.Second):
		t.Fatal("b did not start after the reset window elapsed")
	}
}

func TestEmailWorker_UnthrottledWithoutRateLimitHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockmailer.NewMockClient(ctrl)
	w := worker.NewEmailWorker(mock, nil)

	mock.EXPECT().Send(gomock.Any(), to("trial")).Return(mailer.RateLimitStatus{}, nil)
	require.NoError(t, w.Work(context.Background(), makeJob(40, "trial")))

	bStarted := make(chan struct{})
	cStarted := make(chan struct{})
	release := make(chan struct{})
	for addr, started := range map[string]chan struct{}{"b": bStarted, "c": cStarted} {
		mock.EXPECT().Send(gomock.Any(), to(addr)).DoAndReturn(
			func(context.Context, mailer.Message) (mailer.RateLimitStatus, error) {
				close(started)
				<-release

				return mailer.RateLimitStatus{}, nil
			})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	go func() { _ = w.Work(ctx, makeJob(41, "b")) }()
	go func() { _ = w.Work(ctx, makeJob(42, "c")) }()

	for _, started := range []chan struct{}{bStarted, cStarted} {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("unthrottled sends should run concurrently")
		}
	}
	close(release)
}
