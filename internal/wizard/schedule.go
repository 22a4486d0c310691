package wizard

import "time"

// Quick-time shortcut offsets, in minutes from now.
const (
	QuickNow       = 0
	QuickInOneHour = 60
	QuickInFourHrs = 240
	QuickTonight   = 720
)

// DefaultDate is today's date in form format.
func DefaultDate(now time.Time) string {
	return now.Format("2006-01-02")
}

// DefaultTime is one hour from now with the minutes rounded up to the next
// 30-minute boundary, so 13:47 becomes 15:00 and 13:30 becomes 14:30.
func DefaultTime(now time.Time) string {
	t := now.Add(time.Hour)
	if rem := t.Minute() % 30; rem != 0 {
		t = t.Add(time.Duration(30-rem) * time.Minute)
	}
	return t.Format("15:04")
}

// QuickTime computes the time field for a quick-time shortcut. The date
// field is left alone even when the offset crosses midnight.
func QuickTime(now time.Time, offsetMinutes int) string {
	return now.Add(time.Duration(offsetMinutes) * time.Minute).Format("15:04")
}
