package notify

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// EmailArgs contains the arguments of a transactional email job submitted to
// River. The message is rendered by the worker when the job runs.
type EmailArgs struct {
	To       string            `json:"to"`
	Template Template          `json:"template"`
	Data     map[string]string `json:"data"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the email worker.
func (args EmailArgs) Kind() string { return "SendEmailJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args EmailArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		Queue:       river.QueueDefault,
	}
}

// DigestArgs triggers the admin digest. It carries no data: the worker reads
// the current dashboard counters when it runs.
type DigestArgs struct{}

func (DigestArgs) Kind() string { return "AdminDigestJob" }

// InsertOpts keeps at most one digest per hour in any live state so a
// restarted leader does not send it twice.
func (DigestArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
