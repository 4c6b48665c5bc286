package services

// Test hooks for state that is process-global in production.

// ResetMigrationGuard clears the run-once migration guard so each test can
// exercise the routine against its own database.
func ResetMigrationGuard() {
	unifiedRoadmapMigrated.Store(false)
}

// IsMissingSortOrderErr exposes the fallback trigger classification.
var IsMissingSortOrderErr = isMissingSortOrderErr
