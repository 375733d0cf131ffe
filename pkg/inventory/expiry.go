package inventory

import (
	"math"
	"time"
)

const (
	StatusFresh        = "Fresh"
	StatusExpiringSoon = "Expiring Soon"
	StatusExpired      = "Expired"

	// Items expiring within this many days count as "Expiring Soon".
	expiringSoonWindowDays = 7
)

// ClassifyExpiry maps an item's expiry date to a freshness label relative
// to asOf. Both dates are truncated to midnight in asOf's zone, so time
// of day and the zone the expiry was parsed in never affect the result.
// A missing expiry date always classifies as Fresh.
func ClassifyExpiry(expiry *time.Time, asOf time.Time) string {
	if expiry == nil {
		return StatusFresh
	}

	exp := truncateToDay(expiry.In(asOf.Location()))
	today := truncateToDay(asOf)

	diffDays := int(math.Ceil(exp.Sub(today).Hours() / 24))
	switch {
	case diffDays < 0:
		return StatusExpired
	case diffDays <= expiringSoonWindowDays:
		return StatusExpiringSoon
	default:
		return StatusFresh
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
