package discord_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"task-submission-bot/internal/model"
	"task-submission-bot/internal/router"
	"task-submission-bot/internal/taskfile"
	taskfileDiscord "task-submission-bot/internal/taskfile/delivery/discord"
	pkgDiscord "task-submission-bot/pkg/discord"
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

type mockDiscord struct {
	replies  []string
	messages map[string][]string
	files    []pkgDiscord.File
	content  []string
	dmErr    error
}

func (m *mockDiscord) SendMessage(ctx context.Context, channelID, text string) (string, error) {
	if m.messages == nil {
		m.messages = map[string][]string{}
	}
	m.messages[channelID] = append(m.messages[channelID], text)
	return "msg", nil
}
func (m *mockDiscord) Reply(ctx context.Context, channelID, messageID, text string) (string, error) {
	m.replies = append(m.replies, text)
	return "reply", nil
}
func (m *mockDiscord) SendDM(ctx context.Context, userID, text string) (string, error) {
	return "dm", nil
}
func (m *mockDiscord) SendDMFile(ctx context.Context, userID string, file pkgDiscord.File) error {
	if m.dmErr != nil {
		return m.dmErr
	}
	data, _ := io.ReadAll(file.Reader)
	m.files = append(m.files, file)
	m.content = append(m.content, string(data))
	return nil
}
func (m *mockDiscord) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return nil
}
func (m *mockDiscord) ChannelMessages(ctx context.Context, channelID, beforeID string, limit int) ([]pkgDiscord.Message, error) {
	return nil, nil
}
func (m *mockDiscord) BotUserID(ctx context.Context) (string, error) { return "bot", nil }
func (m *mockDiscord) DownloadAttachment(ctx context.Context, url string, w io.Writer) error {
	return nil
}

func (m *mockDiscord) lastReply() string {
	if len(m.replies) == 0 {
		return ""
	}
	return m.replies[len(m.replies)-1]
}

type mockUseCase struct {
	file       taskfile.TaskFile
	fetchErr   error
	replace    taskfile.ReplaceOutput
	replaceErr error
	replaced   []model.Attachment
}

func (m *mockUseCase) Fetch(ctx context.Context) (taskfile.TaskFile, error) {
	return m.file, m.fetchErr
}
func (m *mockUseCase) Replace(ctx context.Context, att model.Attachment) (taskfile.ReplaceOutput, error) {
	m.replaced = append(m.replaced, att)
	return m.replace, m.replaceErr
}

func dispatch(t *testing.T, uc taskfile.UseCase, dc *mockDiscord, adminOnly bool, evt model.Event) {
	t.Helper()
	reg := router.New(&mockLogger{}, dc, router.Options{AdminIDs: []string{"admin"}, RateLimitPerMin: 600})
	reg.Register(taskfileDiscord.New(&mockLogger{}, uc, dc, taskfileDiscord.Config{
		TaskFolder:       "Task",
		TaskChannelID:    "tasks",
		AddTaskAdminOnly: adminOnly,
	}).Commands()...)
	if evt.ChannelID == "" {
		evt.ChannelID = "c1"
	}
	if !reg.Dispatch(context.Background(), evt) {
		t.Fatalf("%q did not match", evt.Text)
	}
}

func TestTask(t *testing.T) {
	t.Run("sent by DM", func(t *testing.T) {
		dc := &mockDiscord{}
		uc := &mockUseCase{file: taskfile.TaskFile{Name: "Brief.docx", MimeType: "application/docx", Content: []byte("doc")}}
		dispatch(t, uc, dc, true, model.Event{AuthorID: "u1", Text: "!task"})
		if len(dc.files) != 1 || dc.files[0].Name != "Brief.docx" || dc.content[0] != "doc" {
			t.Fatalf("unexpected DM file: %+v", dc.files)
		}
		if dc.lastReply() != "Task file sent to your DM!" {
			t.Errorf("unexpected reply: %q", dc.lastReply())
		}
	})

	t.Run("empty container", func(t *testing.T) {
		dc := &mockDiscord{}
		dispatch(t, &mockUseCase{fetchErr: taskfile.ErrNoTaskFile}, dc, true, model.Event{AuthorID: "u1", Text: "!task"})
		if dc.lastReply() != `No files found in the "Task" folder.` {
			t.Errorf("unexpected reply: %q", dc.lastReply())
		}
	})

	t.Run("DM closed", func(t *testing.T) {
		dc := &mockDiscord{dmErr: errors.New("cannot send")}
		dispatch(t, &mockUseCase{}, dc, true, model.Event{AuthorID: "u1", Text: "!task"})
		if dc.lastReply() != "Failed to send the task. Please make sure your DMs are open." {
			t.Errorf("unexpected reply: %q", dc.lastReply())
		}
	})

	t.Run("fetch failure", func(t *testing.T) {
		dc := &mockDiscord{}
		dispatch(t, &mockUseCase{fetchErr: errors.New("drive down")}, dc, true, model.Event{AuthorID: "u1", Text: "!task"})
		if dc.lastReply() != "Failed to download the task. Please try again later." {
			t.Errorf("unexpected reply: %q", dc.lastReply())
		}
	})

	t.Run("does not shadow addtask", func(t *testing.T) {
		dc := &mockDiscord{}
		uc := &mockUseCase{}
		dispatch(t, uc, dc, false, model.Event{AuthorID: "u1", Text: "!addtask"})
		if len(dc.files) != 0 {
			t.Errorf("!addtask must not run !task")
		}
	})
}

func TestAddTask(t *testing.T) {
	att := model.Attachment{Name: "task4.pdf", URL: "https://cdn/task4.pdf"}

	t.Run("admin only by default", func(t *testing.T) {
		dc := &mockDiscord{}
		uc := &mockUseCase{}
		dispatch(t, uc, dc, true, model.Event{AuthorID: "u1", Text: "!addtask", Attachments: []model.Attachment{att}})
		if len(uc.replaced) != 0 || dc.lastReply() != "You don't have permission to use this command." {
			t.Errorf("unexpected: %v %q", uc.replaced, dc.lastReply())
		}
	})

	t.Run("open variant", func(t *testing.T) {
		dc := &mockDiscord{}
		uc := &mockUseCase{replace: taskfile.ReplaceOutput{Name: "task4.pdf"}}
		dispatch(t, uc, dc, false, model.Event{AuthorID: "u1", Text: "!addtask", Attachments: []model.Attachment{att}})
		if len(uc.replaced) != 1 {
			t.Fatalf("expected replace to run")
		}
	})

	t.Run("requires attachment", func(t *testing.T) {
		dc := &mockDiscord{}
		uc := &mockUseCase{}
		dispatch(t, uc, dc, true, model.Event{AuthorID: "admin", Text: "!addtask"})
		if len(uc.replaced) != 0 || dc.lastReply() != "Please attach a file to upload as the new task." {
			t.Errorf("unexpected: %v %q", uc.replaced, dc.lastReply())
		}
	})

	t.Run("success announces", func(t *testing.T) {
		dc := &mockDiscord{}
		uc := &mockUseCase{replace: taskfile.ReplaceOutput{Name: "task4.pdf", Removed: 1}}
		dispatch(t, uc, dc, true, model.Event{AuthorID: "admin", Text: "!addtask", Attachments: []model.Attachment{att}})
		if dc.lastReply() != "New task file **task4.pdf** uploaded successfully!" {
			t.Errorf("unexpected reply: %q", dc.lastReply())
		}
		if got := dc.messages["tasks"]; len(got) != 1 || got[0] != "@everyone New task has been added!" {
			t.Errorf("unexpected announcement: %v", got)
		}
	})

	t.Run("partial cleanup", func(t *testing.T) {
		dc := &mockDiscord{}
		uc := &mockUseCase{replace: taskfile.ReplaceOutput{Name: "task4.pdf", FailedRemovals: 1}}
		dispatch(t, uc, dc, true, model.Event{AuthorID: "admin", Text: "!addtask", Attachments: []model.Attachment{att}})
		if dc.lastReply() != "New task uploaded, but some old files could not be removed." {
			t.Errorf("unexpected reply: %q", dc.lastReply())
		}
	})

	t.Run("upload failure", func(t *testing.T) {
		dc := &mockDiscord{}
		uc := &mockUseCase{replaceErr: errors.New("quota")}
		dispatch(t, uc, dc, true, model.Event{AuthorID: "admin", Text: "!addtask", Attachments: []model.Attachment{att}})
		if dc.lastReply() != "Failed to upload the task. Please try again." {
			t.Errorf("unexpected reply: %q", dc.lastReply())
		}
		if len(dc.messages["tasks"]) != 0 {
			t.Errorf("no announcement expected")
		}
	})
}
