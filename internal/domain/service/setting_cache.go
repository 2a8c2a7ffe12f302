package service

import (
	"context"

	"backoffice/internal/domain/entity"
)

// SettingCache is a read-through cache for singleton settings. Implementations
// must treat every operation as best effort; a cache failure never blocks the
// database path.
type SettingCache interface {
	// Get returns the cached setting, or (nil, nil) on a miss.
	Get(ctx context.Context, name string) (*entity.Setting, error)

	// Set stores the setting under its name.
	Set(ctx context.Context, setting *entity.Setting) error

	// Invalidate drops the cached setting after a write.
	Invalidate(ctx context.Context, name string) error
}
