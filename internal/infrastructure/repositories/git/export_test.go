//go:build unit

package git

// Exported for package-external tests.
var (
	ParseNameStatus  = parseNameStatus
	DeletionSentinel = deletionSentinel
	SanitizeMessage  = sanitizeMessage
)
