package wiki

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-minutes/internal/confluence/repository"
	"meeting-minutes/pkg/confluence"
	pkgLog "meeting-minutes/pkg/log"
)

const (
	spaceIDCacheSize = 256

	// Page sizes per endpoint, the maximums each API generation accepts.
	v2SpaceLimit   = 250
	v2PageLimit    = 250
	v2FolderLimit  = 100
	v1SpaceLimit   = 50
	v1ContentLimit = 100

	// folderScanCap bounds the page scan used to discover folders.
	folderScanCap = 1000
)

// Options tunes the listing sources.
type Options struct {
	// MaxItems caps how many items a single listing may scan; 0 disables the cap.
	MaxItems int
	// CacheTTL is how long a resolved space key -> space id mapping is kept.
	CacheTTL time.Duration
}

// Sources returns the space and content listing sources in fallback order:
// the v2 API first, then the legacy v1 API.
func Sources(client *confluence.Client, opt Options, l pkgLog.Logger) ([]repository.SpaceSource, []repository.ContentSource) {
	ttl := opt.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	current := &v2Source{
		client:   client,
		maxItems: opt.MaxItems,
		spaceIDs: expirable.NewLRU[string, string](spaceIDCacheSize, nil, ttl),
		l:        l,
	}
	legacy := &v1Source{
		client:   client,
		maxItems: opt.MaxItems,
		l:        l,
	}

	return []repository.SpaceSource{current, legacy}, []repository.ContentSource{current, legacy}
}
