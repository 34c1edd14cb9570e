package orderid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prefix    = "ORD-"
	suffixLen = 5
)

// Generator produces human-shareable order identifiers from a time component
// plus a short random suffix. Uniqueness is best-effort: the millisecond
// timestamp and the uuid-derived suffix make collisions extremely unlikely,
// nothing formally prevents them.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock fixes the time source for deterministic tests.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) OrderID() string {
	stamp := strconv.FormatInt(g.now().UnixMilli(), 36)

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]

	return strings.ToUpper(fmt.Sprintf("%s%s-%s", prefix, stamp, suffix))
}
