package native

import (
	"time"
)

// Timestamp is a UNIX timestamp in seconds.
type Timestamp uint64

// Time converts the timestamp into standard time.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// FromTime converts standard time into timestamp.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}
