package common

import "time"

// TimeSource reads a file's on-disk creation timestamp. The second return is
// false when the platform or filesystem does not record one.
type TimeSource func(path string) (time.Time, bool)
