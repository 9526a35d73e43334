package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces client-side record identifiers in the
// "<unix-millis>-<4 hex>" format the spreadsheet rows use. The timestamp
// prefix keeps ids roughly sortable by creation time; the random suffix
// makes collisions within one millisecond practically impossible without
// any coordination.
type IDGenerator struct{}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Generate() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
