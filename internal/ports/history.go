package ports

import (
	"context"

	"github.com/renato0307/trainmerge/internal/domain"
)

// MergeHistoryRepository stores the local merge audit log
type MergeHistoryRepository interface {
	Add(ctx context.Context, record domain.MergeRecord) error
	List(ctx context.Context, limit int) ([]domain.MergeRecord, error)
	Close() error
}
