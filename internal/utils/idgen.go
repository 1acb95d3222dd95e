package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewBusinessID returns a short human-facing identifier such as "V-9F2A41BC".
// The suffix comes from a random UUID, so collisions are left to the store's
// unique index to catch.
func NewBusinessID(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s", prefix, suffix)
}
