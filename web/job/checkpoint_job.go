package job

import (
	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/logger"
)

// CheckpointJob flushes the sqlite WAL back into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Here Run is an interface method of the cron Job interface
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
