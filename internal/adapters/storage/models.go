package storage

import "time"

// MergeRecordModel is the GORM model for the merge_records table
type MergeRecordModel struct {
	CreatedAt         time.Time `gorm:"not null;index:idx_created_at"`
	ExecutionID       string    `gorm:"not null;index:idx_execution_id"`
	FailureMessage    string    `gorm:"not null;default:''"`
	ID                uint      `gorm:"primaryKey;autoIncrement"`
	PullRequestNumber int       `gorm:"not null;index:idx_pull_request_number"`
	PullRequestTitle  string    `gorm:"not null;default:''"`
	Status            string    `gorm:"not null"`
	Strategy          string    `gorm:"not null;default:''"`
	TargetBranches    string    `gorm:"not null;default:''"` // Comma separated
}

// TableName specifies the table name for GORM
func (MergeRecordModel) TableName() string { return "merge_records" }
