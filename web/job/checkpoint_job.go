package job

import (
	"goblog/database"
	"goblog/logger"
)

// CheckpointJob periodically flushes the sqlite WAL back into the main
// database file so it cannot grow without bound.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements cron.Job.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
