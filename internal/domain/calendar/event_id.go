package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
)

const (
	prefixEvent       = "e_"
	prefixMaintenance = "m_"
)

// StreamID builds the prefixed id used by the merged calendar feed.
func StreamID(eventType EventType, id uint) string {
	if eventType.IsMaintenance() {
		return fmt.Sprintf("%s%d", prefixMaintenance, id)
	}
	return fmt.Sprintf("%s%d", prefixEvent, id)
}

// ParseStreamID accepts "m_12", "e_7" or a bare number. A bare number is
// resolved with the fallback type; a prefix wins over the fallback.
func ParseStreamID(raw string, fallback EventType) (uint, bool, error) {
	raw = strings.TrimSpace(raw)
	isMaintenance := fallback.IsMaintenance()

	switch {
	case strings.HasPrefix(raw, prefixMaintenance):
		raw = strings.TrimPrefix(raw, prefixMaintenance)
		isMaintenance = true
	case strings.HasPrefix(raw, prefixEvent):
		raw = strings.TrimPrefix(raw, prefixEvent)
		isMaintenance = false
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false, httperr.ErrBusiness("invalid_id")
	}

	return uint(id), isMaintenance, nil
}
