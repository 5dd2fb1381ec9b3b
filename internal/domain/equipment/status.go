package equipment

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/gym-backoffice/internal/httperr"
)

// ===============================
// Equipment Status
// ===============================

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusInUse       Status = "In Use"
	StatusMaintenance Status = "Maintenance"
	StatusOutOfOrder  Status = "Out of Order"
	StatusRetired     Status = "Retired"
)

// legacy spellings found in older tables and forms
var synonyms = map[string]Status{
	"available":         StatusAvailable,
	"active":            StatusAvailable,
	"in use":            StatusInUse,
	"in_use":            StatusInUse,
	"inuse":             StatusInUse,
	"maintenance":       StatusMaintenance,
	"under maintenance": StatusMaintenance,
	"out of order":      StatusOutOfOrder,
	"out_of_order":      StatusOutOfOrder,
	"out of service":    StatusOutOfOrder,
	"retired":           StatusRetired,
	"inactive":          StatusRetired,
}

// Parse maps any known spelling to the canonical status.
func Parse(raw string) (Status, error) {
	key := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if st, ok := synonyms[key]; ok {
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_equipment_status")
}

func (s Status) String() string {
	return string(s)
}

// Scan normalizes legacy values at the data-access boundary.
func (s *Status) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*s = StatusAvailable
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("equipment status: unsupported type %T", value)
	}

	if strings.TrimSpace(raw) == "" {
		*s = StatusAvailable
		return nil
	}

	st, err := Parse(raw)
	if err != nil {
		return fmt.Errorf("equipment status: unknown value %q", raw)
	}
	*s = st
	return nil
}

func (s Status) Value() (driver.Value, error) {
	if s == "" {
		return string(StatusAvailable), nil
	}
	return string(s), nil
}
