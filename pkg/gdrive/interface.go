package gdrive

import (
	"context"
	"io"

	"task-submission-bot/internal/model"
)

// IDrive is the folder/file store the bot works against.
type IDrive interface {
	// FindFolder returns the first non-trashed folder named name.
	FindFolder(ctx context.Context, name string) (model.FolderNode, error)

	// ListChildren returns the children of parentID matching filter, following pagination.
	ListChildren(ctx context.Context, parentID string, filter ChildFilter) ([]model.FolderNode, error)

	// CreateFolder creates a folder named name under parentID.
	CreateFolder(ctx context.Context, parentID, name string) (model.FolderNode, error)

	// Move reparents fileID into toParent. An empty fromParent removes all current parents.
	Move(ctx context.Context, fileID, fromParent, toParent string) error

	// Upload stores the content of r as a new file under parentID.
	Upload(ctx context.Context, parentID, name, mimeType string, r io.Reader) (model.FolderNode, error)

	// Download streams a binary file's content into w.
	Download(ctx context.Context, fileID string, w io.Writer) error

	// Export converts a Google-native document to targetMimeType and streams it into w.
	Export(ctx context.Context, fileID, targetMimeType string, w io.Writer) error

	// Delete permanently removes fileID.
	Delete(ctx context.Context, fileID string) error
}
