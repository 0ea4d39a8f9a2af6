package service

import (
	"strconv"
	"time"
)

// nextTimeID derives an identifier from the current time in milliseconds,
// bumping past collisions so ids stay unique within a collection even when
// two records land in the same millisecond.
func nextTimeID(now time.Time, exists func(string) bool) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !exists(id) {
			return id
		}
		ms++
	}
}
