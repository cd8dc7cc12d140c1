package model

// RenameOptions tune a rename plan.
type RenameOptions struct {
	// Docs also renames whole-word matches inside strings and comments.
	Docs bool
}

// Edit replaces Length bytes at Offset with Text.
type Edit struct {
	Offset int
	Length int
	Text   string
}

// FileChange is the planned new content of one file.
type FileChange struct {
	Path     Path
	Original []byte
	Updated  []byte
	Edits    []Edit
}

// ChangeSet is a planned rename over the module set. It is bound to the file
// contents it was planned against.
type ChangeSet struct {
	Old     string
	New     string
	Options RenameOptions
	Files   []FileChange
	Diff    string
}

// Affected returns the paths the change set modifies.
func (c *ChangeSet) Affected() []Path {
	paths := make([]Path, 0, len(c.Files))
	for _, file := range c.Files {
		paths = append(paths, file.Path)
	}

	return paths
}
