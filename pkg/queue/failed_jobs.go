package queue

import (
	"time"

	"gorm.io/gorm"
)

// FailedJobRecord is the database row written when a job exhausts its
// retries, so failures can be inspected after the process exits.
type FailedJobRecord struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	JobType  string    `gorm:"size:255" json:"job_type"`
	Payload  string    `gorm:"type:text" json:"payload"`
	Error    string    `gorm:"type:text" json:"error"`
	Attempts int       `json:"attempts"`
	FailedAt time.Time `json:"failed_at"`
}

func (FailedJobRecord) TableName() string { return "failed_jobs" }

var failedDB *gorm.DB

// UseDB enables database persistence of failed jobs. Without it failures
// are only kept in memory.
func UseDB(db *gorm.DB) {
	failedDB = db
}

func persistFailure(typeName, payload string, attempts int, err error) {
	if failedDB == nil {
		return
	}
	rec := FailedJobRecord{
		JobType:  typeName,
		Payload:  payload,
		Error:    err.Error(),
		Attempts: attempts,
		FailedAt: time.Now(),
	}
	failedDB.Create(&rec)
}
