package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// fallbackType is used when a model reply does not look like a
// conventional commit.
const fallbackType = "chore"

// conventionalPattern matches a "type(scope): subject" line. The scope
// and the breaking-change marker are optional.
var conventionalPattern = regexp.MustCompile(`^([a-zA-Z]+)(?:\(([^)]*)\))?!?:\s*(.+)$`)

// CommitMessage is a parsed conventional-commit line.
type CommitMessage struct {
	Type    string
	Scope   string
	Subject string
	// Formatted is the full "type(scope): subject" line used as the
	// actual commit message.
	Formatted string
}

// ParseCommitMessage extracts the first conventional-commit line from a
// free-form model reply. The second return value reports whether the
// reply matched the conventional shape; when it did not, the caller
// should fall back to FallbackCommitMessage.
func ParseCommitMessage(reply string) (CommitMessage, bool) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.Trim(strings.TrimSpace(line), "`\"'")
		if line == "" {
			continue
		}
		match := conventionalPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		return CommitMessage{
			Type:      strings.ToLower(match[1]),
			Scope:     match[2],
			Subject:   strings.TrimSpace(match[3]),
			Formatted: line,
		}, true
	}
	return CommitMessage{}, false
}

// FallbackCommitMessage builds a generic message from a raw model reply
// that did not match the conventional shape. An empty reply produces a
// placeholder subject so the commit never ends up with an empty message.
func FallbackCommitMessage(reply string) CommitMessage {
	subject := firstNonEmptyLine(reply)
	if subject == "" {
		subject = "update files"
	}
	return CommitMessage{
		Type:      fallbackType,
		Subject:   subject,
		Formatted: fmt.Sprintf("%s: %s", fallbackType, subject),
	}
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.Trim(strings.TrimSpace(line), "`\"'")
		if line != "" {
			return line
		}
	}
	return ""
}
