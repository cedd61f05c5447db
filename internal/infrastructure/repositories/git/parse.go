package git

import (
	"strings"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// parseNameStatus turns `git diff --cached --name-status` output into
// file changes. Renames and copies report the new path as a modification.
func parseNameStatus(output string) []entities.FileChange {
	var changes []entities.FileChange

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		status := fields[0]
		path := fields[len(fields)-1] // renames list old then new path

		changes = append(changes, entities.FileChange{
			Path: path,
			Type: changeTypeFromStatus(status),
		})
	}

	return changes
}

func changeTypeFromStatus(status string) entities.ChangeType {
	switch {
	case strings.HasPrefix(status, "A"):
		return entities.ChangeAdded
	case strings.HasPrefix(status, "D"):
		return entities.ChangeDeleted
	default:
		return entities.ChangeModified
	}
}

// deletionSentinel is returned instead of a diff for deleted files; the
// model only needs to know the file is gone.
func deletionSentinel(path string) string {
	return "File was deleted: " + path
}

// sanitizeMessage strips characters that tend to mangle commit messages
// when they round-trip through tooling.
func sanitizeMessage(message string) string {
	replacer := strings.NewReplacer(
		"\r", "",
		"`", "'",
		`"`, "'",
	)
	return strings.TrimSpace(replacer.Replace(message))
}
