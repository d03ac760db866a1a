package usecase

import (
	"context"
	"fmt"
	"io"
	"os"

	"task-submission-bot/internal/model"
	"task-submission-bot/internal/taskfile"
	"task-submission-bot/pkg/gdrive"
)

func (uc *implUseCase) Replace(ctx context.Context, att model.Attachment) (taskfile.ReplaceOutput, error) {
	if att.URL == "" {
		return taskfile.ReplaceOutput{}, taskfile.ErrNoAttachment
	}

	container, err := uc.drive.FindFolder(ctx, uc.cfg.TaskFolder)
	if err != nil {
		return taskfile.ReplaceOutput{}, fmt.Errorf("find %q: %w", uc.cfg.TaskFolder, err)
	}

	// Upload first so a failure leaves the previous task in place.
	uploaded, err := uc.upload(ctx, container.ID, att)
	if err != nil {
		return taskfile.ReplaceOutput{}, err
	}
	out := taskfile.ReplaceOutput{Name: uploaded.Name}

	for _, trashed := range []bool{false, true} {
		files, err := uc.drive.ListChildren(ctx, container.ID, gdrive.ChildFilter{Kind: gdrive.KindFiles, Trashed: trashed})
		if err != nil {
			uc.l.Errorf(ctx, "internal.taskfile.usecase.Replace: list old files (trashed=%t): %v", trashed, err)
			out.FailedRemovals++
			continue
		}
		for _, f := range files {
			if f.ID == uploaded.ID {
				continue
			}
			if err := uc.drive.Delete(ctx, f.ID); err != nil {
				uc.l.Errorf(ctx, "internal.taskfile.usecase.Replace: delete %q: %v", f.Name, err)
				out.FailedRemovals++
				continue
			}
			out.Removed++
		}
	}

	uc.l.Infof(ctx, "internal.taskfile.usecase.Replace: %s uploaded, %d old files removed", out.Name, out.Removed)
	return out, nil
}

func (uc *implUseCase) upload(ctx context.Context, parentID string, att model.Attachment) (model.FolderNode, error) {
	tmp, err := os.CreateTemp(uc.cfg.TempDir, "task-*")
	if err != nil {
		return model.FolderNode{}, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := uc.discord.DownloadAttachment(ctx, att.URL, tmp); err != nil {
		return model.FolderNode{}, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return model.FolderNode{}, fmt.Errorf("rewind temp file: %w", err)
	}

	mimeType := att.MimeType
	if mimeType == "" {
		mimeType = gdrive.MimeOctetStream
	}
	node, err := uc.drive.Upload(ctx, parentID, att.Name, mimeType, tmp)
	if err != nil {
		return model.FolderNode{}, fmt.Errorf("upload %q: %w", att.Name, err)
	}
	return node, nil
}
