package whale

import "time"

// TimeValue is an instant with an optional fixed UTC offset in seconds. The
// offset records the zone the instant was captured in; comparisons use the
// instant alone.
type TimeValue struct {
	instant   time.Time
	offset    int
	hasOffset bool
}

// NewTime captures an instant without zone information.
func NewTime(instant time.Time) TimeValue {
	return TimeValue{instant: instant.UTC()}
}

// NewTimeWithOffset captures an instant together with its UTC offset in
// seconds.
func NewTimeWithOffset(instant time.Time, offset int) TimeValue {
	return TimeValue{instant: instant.UTC(), offset: offset, hasOffset: true}
}

// Now captures the current instant in the local zone.
func Now() TimeValue {
	now := time.Now()
	_, offset := now.Zone()
	return NewTimeWithOffset(now, offset)
}

// Instant returns the captured instant in UTC.
func (t TimeValue) Instant() time.Time { return t.instant }

// UTC renders the instant in UTC.
func (t TimeValue) UTC() string {
	return t.instant.Format(time.RFC3339Nano)
}

// Local renders the instant in its captured zone, falling back to UTC when
// no offset was recorded.
func (t TimeValue) Local() string {
	if !t.hasOffset {
		return t.UTC()
	}
	zone := time.FixedZone("", t.offset)
	return t.instant.In(zone).Format(time.RFC3339Nano)
}

func (t TimeValue) compare(other TimeValue) int {
	switch {
	case t.instant.Before(other.instant):
		return -1
	case t.instant.After(other.instant):
		return 1
	default:
		return 0
	}
}

func (t TimeValue) String() string { return t.Local() }
