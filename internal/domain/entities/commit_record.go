package entities

// CommitRecord is one commit read back from the git log, annotated with
// the files it touched. Used only to build pull request descriptions.
type CommitRecord struct {
	Hash    string
	Message string
	Files   []string
}
