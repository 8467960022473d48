package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	siteID  = uuid.NewString()
	lamport uint64
)

// SiteID identifies this editor instance in shared sessions.
func SiteID() string {
	return siteID
}

func nextLamport() uint64 {
	return atomic.AddUint64(&lamport, 1)
}

// observeLamport advances the local clock past a timestamp seen on the wire.
func observeLamport(seen uint64) {
	for {
		cur := atomic.LoadUint64(&lamport)
		if seen <= cur || atomic.CompareAndSwapUint64(&lamport, cur, seen) {
			return
		}
	}
}

// stamp tags an op with this site's identity and the next clock value.
func stamp(op Op) Op {
	op.Lamport = nextLamport()
	op.Site = siteID
	return op
}
