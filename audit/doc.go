// Package audit provides lifecycle tracking and leak detection for erased
// storage.
//
// smallbox.Erased has no teardown of its own: a storage that is never
// extracted or adopted silently keeps its heap block alive and never runs
// its payload's Drop. A Tracker records every erase and every consume so
// that incomplete cycles can be found during development and testing:
//
//	tr := audit.NewTracker()
//
//	e, h := audit.Erase(tr, payload)
//	// ... transport e through untyped code paths ...
//	v := audit.Extract[payloadType](tr, &e, h)
//
//	if err := tr.Close(); err != nil {
//	    // some storage was never consumed
//	}
//
// # Observers
//
// Register observers to watch lifecycle events:
//
//	tr.Subscribe(obs) // obs.OnStorageEvent called on store and consume
//
// # Logging
//
// The package logs through zap. It uses a no-op logger unless one is
// installed:
//
//	audit.SetLogger(zap.L())
//
// Tracked events log at Debug level; leaks found by Close log at Warn.
//
// The tracker holds metadata only, never the storages themselves, so it
// cannot reclaim a leaked payload - it can only report it.
package audit
