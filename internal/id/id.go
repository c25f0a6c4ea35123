package id

import (
	"strconv"
	"sync"
	"time"
)

// Ids are millisecond timestamps, matching the snapshot format the app has
// always persisted. A monotonic suffix disambiguates ids generated within
// the same millisecond, which timestamps alone cannot.

var (
	mu   sync.Mutex
	last int64
	seq  int
)

// New returns an id that will not collide with any other id generated by
// this process.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	now := time.Now().UnixMilli()
	if now == last {
		seq++
	} else {
		last = now
		seq = 0
	}
	s := strconv.FormatInt(now, 10)
	if seq > 0 {
		s += "-" + strconv.Itoa(seq)
	}
	return s
}
