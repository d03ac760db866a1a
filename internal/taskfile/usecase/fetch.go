package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"task-submission-bot/internal/taskfile"
	"task-submission-bot/pkg/gdrive"
)

func (uc *implUseCase) Fetch(ctx context.Context) (taskfile.TaskFile, error) {
	container, err := uc.drive.FindFolder(ctx, uc.cfg.TaskFolder)
	if err != nil {
		return taskfile.TaskFile{}, fmt.Errorf("find %q: %w", uc.cfg.TaskFolder, err)
	}

	files, err := uc.drive.ListChildren(ctx, container.ID, gdrive.ChildFilter{Kind: gdrive.KindFiles})
	if err != nil {
		return taskfile.TaskFile{}, fmt.Errorf("list task files: %w", err)
	}
	if len(files) == 0 {
		return taskfile.TaskFile{}, taskfile.ErrNoTaskFile
	}

	node := files[0]
	target, ext := exportTarget(node.MimeType)

	var buf bytes.Buffer
	if target == "" {
		err = uc.drive.Download(ctx, node.ID, &buf)
	} else {
		err = uc.drive.Export(ctx, node.ID, target, &buf)
	}
	if err != nil {
		return taskfile.TaskFile{}, fmt.Errorf("fetch %q: %w", node.Name, err)
	}

	out := taskfile.TaskFile{Name: withExt(node.Name, ext), MimeType: node.MimeType, Content: buf.Bytes()}
	if target != "" {
		out.MimeType = target
	}
	uc.l.Infof(ctx, "internal.taskfile.usecase.Fetch: %s (%d bytes)", out.Name, len(out.Content))
	return out, nil
}

// exportTarget returns the export MIME type and extension for Google-native
// documents, or "" when the file is downloaded as stored.
func exportTarget(mimeType string) (string, string) {
	switch {
	case mimeType == gdrive.MimeGoogleDoc:
		return gdrive.MimeDOCX, ".docx"
	case mimeType == gdrive.MimeGoogleSheet:
		return gdrive.MimeXLSX, ".xlsx"
	case mimeType == gdrive.MimeFolder:
		return "", ""
	case strings.HasPrefix(mimeType, gdrive.MimeGooglePrefix):
		return gdrive.MimePDF, ".pdf"
	default:
		return "", ""
	}
}

func withExt(name, ext string) string {
	if ext == "" || strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}
