package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"task-submission-bot/internal/model"
	pkgDiscord "task-submission-bot/pkg/discord"
	"task-submission-bot/pkg/gdrive"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeDrive is an in-memory folder tree. Children are listed in insertion order.
type fakeDrive struct {
	mu        sync.Mutex
	seq       int
	nodes     []*model.FolderNode
	content   map[string][]byte
	calls     int
	listCalls map[string]int
	uploadErr map[string]error
	// onList runs before each child listing, outside the lock.
	onList func(parentID string)
}

func newFakeDrive() *fakeDrive {
	return &fakeDrive{
		content:   map[string][]byte{},
		listCalls: map[string]int{},
		uploadErr: map[string]error{},
	}
}

func (d *fakeDrive) add(parentID, name string, kind model.NodeKind) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addLocked(parentID, name, kind, "")
}

func (d *fakeDrive) addLocked(parentID, name string, kind model.NodeKind, mime string) string {
	d.seq++
	id := fmt.Sprintf("id-%d", d.seq)
	if kind == model.KindFolder {
		mime = gdrive.MimeFolder
	}
	d.nodes = append(d.nodes, &model.FolderNode{ID: id, Name: name, ParentID: parentID, Kind: kind, MimeType: mime})
	return id
}

func (d *fakeDrive) children(parentID string, kind model.NodeKind) []model.FolderNode {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []model.FolderNode
	for _, n := range d.nodes {
		if n.ParentID == parentID && (kind == "" || n.Kind == kind) {
			out = append(out, *n)
		}
	}
	return out
}

func (d *fakeDrive) FindFolder(ctx context.Context, name string) (model.FolderNode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	for _, n := range d.nodes {
		if n.Name == name && n.Kind == model.KindFolder {
			return *n, nil
		}
	}
	return model.FolderNode{}, gdrive.ErrFolderNotFound
}

func (d *fakeDrive) ListChildren(ctx context.Context, parentID string, filter gdrive.ChildFilter) ([]model.FolderNode, error) {
	d.mu.Lock()
	d.calls++
	d.listCalls[parentID]++
	hook := d.onList
	d.mu.Unlock()
	if hook != nil {
		hook(parentID)
	}

	switch filter.Kind {
	case gdrive.KindFolders:
		return d.children(parentID, model.KindFolder), nil
	case gdrive.KindFiles:
		return d.children(parentID, model.KindFile), nil
	default:
		return d.children(parentID, ""), nil
	}
}

func (d *fakeDrive) CreateFolder(ctx context.Context, parentID, name string) (model.FolderNode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	d.addLocked(parentID, name, model.KindFolder, "")
	return *d.nodes[len(d.nodes)-1], nil
}

func (d *fakeDrive) Move(ctx context.Context, fileID, fromParent, toParent string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	for _, n := range d.nodes {
		if n.ID == fileID {
			n.ParentID = toParent
			return nil
		}
	}
	return fmt.Errorf("no such file %s", fileID)
}

func (d *fakeDrive) Upload(ctx context.Context, parentID, name, mimeType string, r io.Reader) (model.FolderNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.FolderNode{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if err := d.uploadErr[name]; err != nil {
		return model.FolderNode{}, err
	}
	id := d.addLocked(parentID, name, model.KindFile, mimeType)
	d.content[id] = data
	return *d.nodes[len(d.nodes)-1], nil
}

func (d *fakeDrive) Download(ctx context.Context, fileID string, w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	_, err := w.Write(d.content[fileID])
	return err
}

func (d *fakeDrive) Export(ctx context.Context, fileID, targetMimeType string, w io.Writer) error {
	return d.Download(ctx, fileID, w)
}

func (d *fakeDrive) Delete(ctx context.Context, fileID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	for i, n := range d.nodes {
		if n.ID == fileID {
			d.nodes = append(d.nodes[:i], d.nodes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no such file %s", fileID)
}

type sent struct {
	to   string // channel or user
	text string
}

type fakeDiscord struct {
	mu          sync.Mutex
	seq         int
	replies     []sent
	messages    []sent
	dms         []sent
	deleted     []string
	attachments map[string]string
}

func newFakeDiscord() *fakeDiscord {
	return &fakeDiscord{attachments: map[string]string{}}
}

func (f *fakeDiscord) nextID() string {
	f.seq++
	return fmt.Sprintf("msg-%d", f.seq)
}

func (f *fakeDiscord) SendMessage(ctx context.Context, channelID, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, sent{channelID, text})
	return f.nextID(), nil
}

func (f *fakeDiscord) Reply(ctx context.Context, channelID, messageID, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, sent{channelID, text})
	return f.nextID(), nil
}

func (f *fakeDiscord) SendDM(ctx context.Context, userID, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dms = append(f.dms, sent{userID, text})
	return f.nextID(), nil
}

func (f *fakeDiscord) SendDMFile(ctx context.Context, userID string, file pkgDiscord.File) error {
	return nil
}

func (f *fakeDiscord) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeDiscord) ChannelMessages(ctx context.Context, channelID, beforeID string, limit int) ([]pkgDiscord.Message, error) {
	return nil, nil
}

func (f *fakeDiscord) BotUserID(ctx context.Context) (string, error) { return "bot", nil }

func (f *fakeDiscord) DownloadAttachment(ctx context.Context, url string, w io.Writer) error {
	f.mu.Lock()
	body, ok := f.attachments[url]
	f.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: status 404", pkgDiscord.ErrAttachmentFetch)
	}
	_, err := io.Copy(w, bytes.NewBufferString(body))
	return err
}

func (f *fakeDiscord) repliesTo(channelID string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, r := range f.replies {
		if r.to == channelID {
			out = append(out, r.text)
		}
	}
	return out
}

func (f *fakeDiscord) wasDeleted(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.deleted {
		if d == id {
			return true
		}
	}
	return false
}

// waitForPrompt blocks until a folder prompt was posted in channelID.
func waitForPrompt(t *testing.T, dc *fakeDiscord, channelID string) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, r := range dc.repliesTo(channelID) {
			if strings.HasPrefix(r, msgSelectPrompt) {
				return r
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no prompt posted in %s", channelID)
	return ""
}
