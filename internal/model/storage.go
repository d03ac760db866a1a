package model

// NodeKind distinguishes folders from files in the storage tree.
type NodeKind string

const (
	KindFolder NodeKind = "folder"
	KindFile   NodeKind = "file"
)

// FolderNode is an item in the remote storage tree.
type FolderNode struct {
	ID       string
	Name     string
	ParentID string
	Kind     NodeKind
	MimeType string
}

// IsFolder reports whether the node is a folder.
func (n FolderNode) IsFolder() bool {
	return n.Kind == KindFolder
}
