package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns a sortable record id: millisecond timestamp plus a short
// random suffix. Two records created in the same instant still get
// distinct ids.
func NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
