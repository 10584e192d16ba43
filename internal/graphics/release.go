package graphics

import (
	"log"
	"sync/atomic"
)

var logReleases atomic.Bool

// SetReleaseLogging turns on a log line for every GPU object released.
func SetReleaseLogging(enabled bool) {
	logReleases.Store(enabled)
}

func logRelease(kind string, id uint32) {
	if logReleases.Load() {
		log.Printf("releasing %s %d", kind, id)
	}
}
