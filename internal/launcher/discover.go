package launcher

import (
	"time"

	"github.com/dmezquita/workspacectl/internal/platform"
)

// idSet builds a membership set from a query result.
func idSet(ids []platform.WindowID) map[platform.WindowID]struct{} {
	set := make(map[platform.WindowID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// waitForNew polls query until it reports a window id absent from
// existing, or until timeout. When several new ids show up in one poll
// it returns the last one in enumeration order; the window manager does
// not promise any ordering, so "most recently listed" is best-effort
// attribution, not a guarantee. The second return is false on timeout.
func waitForNew(query func() ([]platform.WindowID, error), existing map[platform.WindowID]struct{}, timeout, interval time.Duration) (platform.WindowID, bool) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ids, err := query()
		if err == nil {
			var found platform.WindowID
			ok := false
			for _, id := range ids {
				if _, seen := existing[id]; !seen {
					found = id
					ok = true
				}
			}
			if ok {
				return found, true
			}
		}
		// Query errors are retried until the deadline; a flaky window
		// manager query should not fail the entry outright.

		if time.Now().After(deadline) {
			return "", false
		}
		<-ticker.C
	}
}
