package cartstore

import (
	"context"

	"github.com/i-iangurazov/roksosh/models"
)

// SchemaVersion is the current cart snapshot schema. Snapshots written by
// older code are migrated on load.
const SchemaVersion = 2

// DefaultStoreKey is the record name the snapshot is persisted under.
const DefaultStoreKey = "cart-store"

// SnapshotStorage persists the cart snapshot. Load reports found=false when
// no snapshot exists yet, which is not an error.
type SnapshotStorage interface {
	Load(ctx context.Context) (snap models.CartSnapshot, found bool, err error)
	Save(ctx context.Context, snap models.CartSnapshot) error
}

// migrate upgrades a loaded snapshot to the current schema. The only defined
// step (v1 -> v2) discards every line: the line layout changed shape between
// versions and a stale cart is worth less than a wrong one.
func migrate(snap models.CartSnapshot) models.CartSnapshot {
	if snap.Version < SchemaVersion {
		return models.CartSnapshot{Version: SchemaVersion}
	}
	return snap
}
