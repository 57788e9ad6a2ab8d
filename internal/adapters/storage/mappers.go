package storage

import (
	"strings"

	"github.com/renato0307/trainmerge/internal/domain"
)

// mergeRecordModelToDomain converts a MergeRecordModel (GORM) to domain.MergeRecord
func mergeRecordModelToDomain(m MergeRecordModel) domain.MergeRecord {
	var branches []string
	if m.TargetBranches != "" {
		branches = strings.Split(m.TargetBranches, ",")
	}
	return domain.MergeRecord{
		CreatedAt:         m.CreatedAt,
		ExecutionID:       m.ExecutionID,
		FailureMessage:    m.FailureMessage,
		PullRequestNumber: m.PullRequestNumber,
		PullRequestTitle:  m.PullRequestTitle,
		Status:            domain.MergeStatus(m.Status),
		Strategy:          m.Strategy,
		TargetBranches:    branches,
	}
}

// domainToMergeRecordModel converts a domain.MergeRecord to MergeRecordModel (GORM)
func domainToMergeRecordModel(r domain.MergeRecord) MergeRecordModel {
	return MergeRecordModel{
		CreatedAt:         r.CreatedAt,
		ExecutionID:       r.ExecutionID,
		FailureMessage:    r.FailureMessage,
		PullRequestNumber: r.PullRequestNumber,
		PullRequestTitle:  r.PullRequestTitle,
		Status:            string(r.Status),
		Strategy:          r.Strategy,
		TargetBranches:    strings.Join(r.TargetBranches, ","),
	}
}
