package gdrive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"task-submission-bot/internal/model"
)

const (
	listFields = "nextPageToken, files(id, name, mimeType, parents)"
	pageSize   = 100
)

// Client wraps the Google Drive v3 API service.
type Client struct {
	service *drive.Service
}

var _ IDrive = (*Client)(nil)

// NewClient creates a Drive client from the configured credentials.
func NewClient(ctx context.Context, opts AuthOptions) (*Client, error) {
	ts, err := TokenSource(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewClientFromTokenSource(ctx, ts)
}

// NewClientFromTokenSource creates a Drive client from an existing token source.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Drive client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

func (c *Client) FindFolder(ctx context.Context, name string) (model.FolderNode, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), MimeFolder)

	res, err := c.service.Files.List().Q(q).Fields(listFields).PageSize(1).Context(ctx).Do()
	if err != nil {
		return model.FolderNode{}, fmt.Errorf("failed to search folder %q: %w", name, err)
	}
	if len(res.Files) == 0 {
		return model.FolderNode{}, fmt.Errorf("%w: %s", ErrFolderNotFound, name)
	}
	return toNode(res.Files[0]), nil
}

func (c *Client) ListChildren(ctx context.Context, parentID string, filter ChildFilter) ([]model.FolderNode, error) {
	var nodes []model.FolderNode
	err := c.service.Files.List().
		Q(childQuery(parentID, filter)).
		Fields(listFields).
		OrderBy("name").
		PageSize(pageSize).
		Context(ctx).
		Pages(ctx, func(page *drive.FileList) error {
			for _, f := range page.Files {
				nodes = append(nodes, toNode(f))
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list children of %s: %w", parentID, err)
	}
	return nodes, nil
}

func (c *Client) CreateFolder(ctx context.Context, parentID, name string) (model.FolderNode, error) {
	created, err := c.service.Files.Create(&drive.File{
		Name:     name,
		MimeType: MimeFolder,
		Parents:  []string{parentID},
	}).Fields("id, name, mimeType, parents").Context(ctx).Do()
	if err != nil {
		return model.FolderNode{}, fmt.Errorf("failed to create folder %q: %w", name, err)
	}
	return toNode(created), nil
}

func (c *Client) Move(ctx context.Context, fileID, fromParent, toParent string) error {
	remove := fromParent
	if remove == "" {
		f, err := c.service.Files.Get(fileID).Fields("parents").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to read parents of %s: %w", fileID, err)
		}
		remove = strings.Join(f.Parents, ",")
	}

	_, err := c.service.Files.Update(fileID, &drive.File{}).
		AddParents(toParent).
		RemoveParents(remove).
		Fields("id, parents").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to move %s: %w", fileID, err)
	}
	return nil
}

func (c *Client) Upload(ctx context.Context, parentID, name, mimeType string, r io.Reader) (model.FolderNode, error) {
	if mimeType == "" {
		mimeType = MimeOctetStream
	}

	created, err := c.service.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{parentID},
	}).Media(r, googleapi.ContentType(mimeType)).
		Fields("id, name, mimeType, parents").
		Context(ctx).
		Do()
	if err != nil {
		return model.FolderNode{}, fmt.Errorf("failed to upload %q: %w", name, err)
	}
	return toNode(created), nil
}

func (c *Client) Download(ctx context.Context, fileID string, w io.Writer) error {
	resp, err := c.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read download of %s: %w", fileID, err)
	}
	return nil
}

func (c *Client) Export(ctx context.Context, fileID, targetMimeType string, w io.Writer) error {
	resp, err := c.service.Files.Export(fileID, targetMimeType).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to read export of %s: %w", fileID, err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, fileID string) error {
	if err := c.service.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", fileID, err)
	}
	return nil
}

func childQuery(parentID string, filter ChildFilter) string {
	q := fmt.Sprintf("'%s' in parents and trashed = %t", escapeQuery(parentID), filter.Trashed)
	switch filter.Kind {
	case KindFolders:
		q += fmt.Sprintf(" and mimeType = '%s'", MimeFolder)
	case KindFiles:
		q += fmt.Sprintf(" and mimeType != '%s'", MimeFolder)
	}
	return q
}

// escapeQuery escapes a literal for the Drive query language.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

func toNode(f *drive.File) model.FolderNode {
	node := model.FolderNode{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Kind:     model.KindFile,
	}
	if f.MimeType == MimeFolder {
		node.Kind = model.KindFolder
	}
	if len(f.Parents) > 0 {
		node.ParentID = f.Parents[0]
	}
	return node
}
