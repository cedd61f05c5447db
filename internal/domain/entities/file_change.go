package entities

// ChangeType classifies how a staged file was modified.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
)

// FileChange represents one staged file and how it changed.
type FileChange struct {
	Path string
	Type ChangeType
}

// Label returns the human-readable label used in model prompts.
func (it FileChange) Label() string {
	switch it.Type {
	case ChangeAdded:
		return "new file"
	case ChangeDeleted:
		return "deleted file"
	case ChangeModified:
		return "modified file"
	default:
		return string(it.Type)
	}
}
