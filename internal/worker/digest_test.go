package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"backma/internal/notify"
	"backma/internal/worker"
	"backma/pkg/domain"
	mockstorage "backma/pkg/storage/mock"
)

func digestJob() *river.Job[notify.DigestArgs] {
	return &river.Job[notify.DigestArgs]{JobRow: &rivertype.JobRow{ID: 1}}
}

func TestDigestWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mockstorage.NewMockStorage(ctrl)
	w := worker.NewDigestWorker(s, notify.New(notify.Options{MaxAttempts: 5}), "ops@back.ma")

	s.EXPECT().Overview(gomock.Any()).Return(&domain.Overview{
		TotalBalance:     decimal.RequireFromString("120.50"),
		CommissionEarned: decimal.RequireFromString("12"),
		CompletedVolume:  decimal.RequireFromString("300"),
		PendingWebsites:  2,
		OpenDisputes:     1,
	}, nil)
	s.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			email, ok := args.(notify.EmailArgs)
			require.True(t, ok)
			require.Equal(t, "ops@back.ma", email.To)
			require.Equal(t, notify.TemplateAdminDigest, email.Template)
			require.Equal(t, "2", email.Data["PendingWebsites"])
			require.Equal(t, "1", email.Data["OpenDisputes"])

			return true, nil
		})

	require.NoError(t, w.Work(context.Background(), digestJob()))
}

func TestDigestWorker_Work_NoAdminEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mockstorage.NewMockStorage(ctrl)
	w := worker.NewDigestWorker(s, notify.New(notify.Options{MaxAttempts: 5}), "")

	require.NoError(t, w.Work(context.Background(), digestJob()))
}

func TestDigestWorker_Work_OverviewError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mockstorage.NewMockStorage(ctrl)
	w := worker.NewDigestWorker(s, notify.New(notify.Options{MaxAttempts: 5}), "ops@back.ma")

	s.EXPECT().Overview(gomock.Any()).Return(nil, errors.New("db down"))

	require.ErrorContains(t, w.Work(context.Background(), digestJob()), "db down")
}

func TestPeriodicJobs(t *testing.T) {
	jobs, err := worker.PeriodicJobs(worker.Options{DigestSchedule: "0 8 * * *", AdminEmail: "ops@back.ma"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	jobs, err = worker.PeriodicJobs(worker.Options{DigestSchedule: "", AdminEmail: "ops@back.ma"})
	require.NoError(t, err)
	require.Empty(t, jobs)

	jobs, err = worker.PeriodicJobs(worker.Options{DigestSchedule: "0 8 * * *"})
	require.NoError(t, err)
	require.Empty(t, jobs)

	_, err = worker.PeriodicJobs(worker.Options{DigestSchedule: "every day", AdminEmail: "ops@back.ma"})
	require.Error(t, err)
}
