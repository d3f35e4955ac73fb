//go:build !darwin && !windows

package common

import "time"

// CreationTime reports no creation timestamp. Linux stat carries no portable
// birth time, so files fall back to the quarantine rules when no date can be
// inferred from content.
func CreationTime(string) (time.Time, bool) {
	return time.Time{}, false
}
