// Package catalogs hosts the reference-data domains and shared helpers.
package catalogs

import (
	"encoding/binary"
	"fmt"

	"festa/internal/core/id"
)

// NextCode derives a stable human-readable code from the entity ID.
// UUIDv7 tails are random, so collisions are practically impossible and the
// database unique index on code is the final arbiter anyway.
func NextCode(prefix string, entityID id.ID) string {
	tail := binary.BigEndian.Uint32(entityID[12:16])
	return fmt.Sprintf("%s-%08X", prefix, tail)
}
