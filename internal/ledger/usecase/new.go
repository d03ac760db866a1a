package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-submission-bot/internal/ledger"
	"task-submission-bot/internal/ledger/repository"
	"task-submission-bot/internal/model"
	pkgLog "task-submission-bot/pkg/log"
)

const (
	snapshotCacheSize  = 1024
	DefaultSnapshotTTL = 10 * time.Minute
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.LedgerRepository

	mu        sync.Mutex // serializes read-modify-write of one snapshot
	snapshots *expirable.LRU[model.Scope, []model.LedgerRow]
}

var _ ledger.UseCase = (*implUseCase)(nil)

// New creates a ledger UseCase. Snapshots expire after ttl.
func New(l pkgLog.Logger, repo repository.LedgerRepository, ttl time.Duration) *implUseCase {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		snapshots: expirable.NewLRU[model.Scope, []model.LedgerRow](snapshotCacheSize, nil, ttl),
	}
}
