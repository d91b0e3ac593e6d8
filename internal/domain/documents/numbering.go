// Package documents hosts the business-document domains and shared helpers.
package documents

import (
	"encoding/binary"
	"fmt"
	"time"

	"festa/internal/core/id"
)

// NextNumber derives a document number from the business date and the
// entity ID: "EVT-20240615-3FA2B1C4". The date prefix keeps numbers
// readable on printed documents; the UUIDv7 tail keeps them unique.
func NextNumber(prefix string, date time.Time, docID id.ID) string {
	tail := binary.BigEndian.Uint32(docID[12:16])
	return fmt.Sprintf("%s-%s-%08X", prefix, date.Format("20060102"), tail)
}
