package utils

import "time"

// Korea Standard Time (+09:00)
var kstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

func KST() *time.Location { return kstLoc }

func NowUnixSeconds() int64 { return time.Now().Unix() }

// StartOfDayKST truncates t to midnight in Korea time.
func StartOfDayKST(t time.Time) time.Time {
	k := t.In(kstLoc)
	return time.Date(k.Year(), k.Month(), k.Day(), 0, 0, 0, 0, kstLoc)
}

// DaysBetweenInclusive counts calendar days from start to end, both included.
// Returns 0 when end is before start.
func DaysBetweenInclusive(start, end time.Time) int {
	s := StartOfDayKST(start)
	e := StartOfDayKST(end)
	if e.Before(s) {
		return 0
	}
	// Dates are compared at noon UTC so DST-free arithmetic stays exact.
	sd := time.Date(s.Year(), s.Month(), s.Day(), 12, 0, 0, 0, time.UTC)
	ed := time.Date(e.Year(), e.Month(), e.Day(), 12, 0, 0, 0, time.UTC)
	return int(ed.Sub(sd).Hours()/24) + 1
}

func FormatDateKST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kstLoc).Format("2006-01-02")
}

func FormatRFC3339KST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kstLoc).Format(time.RFC3339)
}

// UnixToTime converts stored unix seconds; zero stays the zero time.
func UnixToTime(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
