package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyExpiry_NilExpiry(t *testing.T) {
	now := date(2026, time.February, 1)
	require.Equal(t, StatusFresh, ClassifyExpiry(nil, now))
}

func TestClassifyExpiry_Expired(t *testing.T) {
	now := date(2026, time.February, 1)

	yesterday := date(2026, time.January, 31)
	require.Equal(t, StatusExpired, ClassifyExpiry(&yesterday, now))

	lastYear := date(2025, time.February, 1)
	require.Equal(t, StatusExpired, ClassifyExpiry(&lastYear, now))
}

func TestClassifyExpiry_ExpiringSoonBoundaries(t *testing.T) {
	now := date(2026, time.February, 1)

	today := date(2026, time.February, 1)
	require.Equal(t, StatusExpiringSoon, ClassifyExpiry(&today, now))

	sevenDays := date(2026, time.February, 8)
	require.Equal(t, StatusExpiringSoon, ClassifyExpiry(&sevenDays, now))

	eightDays := date(2026, time.February, 9)
	require.Equal(t, StatusFresh, ClassifyExpiry(&eightDays, now))
}

func TestClassifyExpiry_TimeOfDayIgnored(t *testing.T) {
	expiry := date(2026, time.February, 8)

	morning := time.Date(2026, time.February, 1, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2026, time.February, 1, 23, 59, 0, 0, time.UTC)
	require.Equal(t, ClassifyExpiry(&expiry, morning), ClassifyExpiry(&expiry, evening))

	lateExpiry := time.Date(2026, time.February, 8, 23, 0, 0, 0, time.UTC)
	require.Equal(t, StatusExpiringSoon, ClassifyExpiry(&lateExpiry, evening))
}

func TestClassifyExpiry_ExpiryZoneDiffersFromClock(t *testing.T) {
	// expiry dates are parsed as UTC midnight but the clock may run in
	// any zone; both sides must land on the same midnight
	jakarta := time.FixedZone("UTC+7", 7*60*60)
	now := time.Date(2026, time.August, 31, 10, 0, 0, 0, jakarta)

	yesterday, err := time.Parse("2006-01-02", "2026-08-30")
	require.NoError(t, err)
	require.Equal(t, StatusExpired, ClassifyExpiry(&yesterday, now))

	sevenDays, err := time.Parse("2006-01-02", "2026-09-07")
	require.NoError(t, err)
	require.Equal(t, StatusExpiringSoon, ClassifyExpiry(&sevenDays, now))

	eightDays, err := time.Parse("2006-01-02", "2026-09-08")
	require.NoError(t, err)
	require.Equal(t, StatusFresh, ClassifyExpiry(&eightDays, now))
}
