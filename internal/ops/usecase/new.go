package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"movi-ops-console/internal/ops"
	"movi-ops-console/internal/ops/repository"
	pkgLog "movi-ops-console/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	live    repository.Source
	fixture repository.Source
	cache   *expirable.LRU[string, any]
}

var _ ops.UseCase = (*implUseCase)(nil)

// New creates a new ops UseCase. Successful live reads are cached for
// cacheTTL and replayed while the backend is down; once the snapshot expires
// the fixture source takes over.
func New(l pkgLog.Logger, live, fixture repository.Source, cacheTTL time.Duration) *implUseCase {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &implUseCase{
		l:       l,
		live:    live,
		fixture: fixture,
		cache:   expirable.NewLRU[string, any](16, nil, cacheTTL),
	}
}
