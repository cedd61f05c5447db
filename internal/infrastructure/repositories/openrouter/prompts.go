package openrouter

import (
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

// maxDiffChars caps how much diff text is embedded in a prompt.
const maxDiffChars = 32 * 1024

const commitMessageTemplate = `You write git commit messages in the conventional commit format.
Given one changed file and its diff, reply with a single line shaped as
"type(scope): subject" or "type: subject". Use a type from: feat, fix,
refactor, docs, test, chore, style, perf, build, ci. Keep the subject in
imperative mood and under 72 characters. Reply with the commit line only,
no markdown, no explanation.

File: {{path}} ({{label}})

Diff:
{{diff}}`

const branchNameTemplate = `You name git branches. Given the commit messages below, reply with one
short kebab-case branch name prefixed with the dominant change type and a
slash (for example "feat/add-user-auth"). Keep it under 40 characters.
Reply with the branch name only.

Commit messages:
{{messages}}`

const prDescriptionTemplate = `You write pull request descriptions. Given the branch name and the list
of commits below, reply with a concise markdown body: one summary
paragraph followed by a "## Changes" bullet list. Do not invent changes
that are not in the commit list.

Branch: {{branch}}

Commits:
{{commits}}`

func buildCommitMessagePrompt(change entities.FileChange, diff string) string {
	if len(diff) > maxDiffChars {
		diff = diff[:maxDiffChars] + "\n\n[diff truncated]"
	}
	return fasttemplate.ExecuteString(commitMessageTemplate, "{{", "}}", map[string]any{
		"path":  change.Path,
		"label": change.Label(),
		"diff":  diff,
	})
}

func buildBranchNamePrompt(messages []entities.CommitMessage) string {
	lines := make([]string, 0, len(messages))
	for _, message := range messages {
		lines = append(lines, "- "+message.Formatted)
	}
	return fasttemplate.ExecuteString(branchNameTemplate, "{{", "}}", map[string]any{
		"messages": strings.Join(lines, "\n"),
	})
}

func buildPRDescriptionPrompt(branch string, commits []entities.CommitRecord) string {
	lines := make([]string, 0, len(commits))
	for _, commit := range commits {
		line := "- " + shortHash(commit.Hash) + " " + commit.Message
		if len(commit.Files) > 0 {
			line += " (" + strings.Join(commit.Files, ", ") + ")"
		}
		lines = append(lines, line)
	}
	return fasttemplate.ExecuteString(prDescriptionTemplate, "{{", "}}", map[string]any{
		"branch":  branch,
		"commits": strings.Join(lines, "\n"),
	})
}

func shortHash(hash string) string {
	const short = 7
	if len(hash) > short {
		return hash[:short]
	}
	return hash
}
