package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"task-submission-bot/internal/conversation"
	"task-submission-bot/internal/model"
	"task-submission-bot/internal/submission"
	"task-submission-bot/pkg/gdrive"
)

func (uc *implUseCase) Submit(ctx context.Context, evt model.Event) (submission.SubmitOutput, error) {
	if len(evt.Attachments) == 0 {
		return submission.SubmitOutput{}, submission.ErrNoAttachments
	}

	// Reserve the scope first so a second !submit is refused while this one runs.
	waiter, err := uc.broker.Begin(evt.Scope())
	if err != nil {
		if errors.Is(err, conversation.ErrAlreadyPending) {
			return submission.SubmitOutput{}, submission.ErrAlreadyPending
		}
		return submission.SubmitOutput{}, err
	}
	defer waiter.Close()

	members, err := uc.memberFolders(ctx)
	if err != nil {
		return submission.SubmitOutput{}, err
	}
	if len(members) == 0 {
		return submission.SubmitOutput{}, submission.ErrNoMemberFolders
	}

	folder, err := uc.awaitSelection(ctx, evt, waiter, members)
	if err != nil {
		return submission.SubmitOutput{}, err
	}

	out := submission.SubmitOutput{Folder: folder.Name}
	for _, att := range evt.Attachments {
		if err := uc.transfer(ctx, folder, att); err != nil {
			uc.l.Errorf(ctx, "%s: %s -> %s failed: %v", logPrefixSubmit, att.Name, folder.Name, err)
			out.Failed = append(out.Failed, att.Name)
			uc.reply(ctx, evt, fmt.Sprintf(msgProcessFailure, att.Name))
			continue
		}
		out.Uploaded = append(out.Uploaded, att.Name)
		uc.notifySubmitted(ctx, evt, att)
	}

	if err := uc.discord.DeleteMessage(ctx, evt.ChannelID, evt.MessageID); err != nil {
		uc.l.Debugf(ctx, "%s: could not delete command message: %v", logPrefixSubmit, err)
	}

	uc.l.Infof(ctx, "%s: %s uploaded %d/%d files to %s", logPrefixSubmit, evt.AuthorName, len(out.Uploaded), len(evt.Attachments), folder.Name)
	return out, nil
}

// awaitSelection posts the numbered folder list and resolves the author's
// reply. The prompt and the reply are deleted on every path.
func (uc *implUseCase) awaitSelection(ctx context.Context, evt model.Event, waiter conversation.Waiter, members []model.FolderNode) (model.FolderNode, error) {
	// Messages sent while the folders were being listed are not answers.
	waiter.Arm()
	promptID, err := uc.discord.Reply(ctx, evt.ChannelID, evt.MessageID, buildPrompt(members))
	if err != nil {
		return model.FolderNode{}, fmt.Errorf("send folder prompt: %w", err)
	}
	defer uc.deleteQuietly(ctx, evt.ChannelID, promptID)

	reply, err := waiter.Wait(ctx, uc.cfg.SelectionTimeout)
	if err != nil {
		if errors.Is(err, conversation.ErrTimeout) {
			return model.FolderNode{}, submission.ErrSelectionTimeout
		}
		return model.FolderNode{}, err
	}
	defer uc.deleteQuietly(ctx, reply.ChannelID, reply.MessageID)

	return parseSelection(reply.Text, members)
}

// transfer copies one attachment through a temp file into folder. The temp
// file is removed whatever the outcome.
func (uc *implUseCase) transfer(ctx context.Context, folder model.FolderNode, att model.Attachment) error {
	tmp, err := os.CreateTemp(uc.cfg.TempDir, "submission-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := uc.discord.DownloadAttachment(ctx, att.URL, tmp); err != nil {
		return err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind temp file: %w", err)
	}

	mimeType := att.MimeType
	if mimeType == "" {
		mimeType = gdrive.MimeOctetStream
	}
	if _, err := uc.drive.Upload(ctx, folder.ID, att.Name, mimeType, tmp); err != nil {
		return err
	}
	return nil
}

func (uc *implUseCase) notifySubmitted(ctx context.Context, evt model.Event, att model.Attachment) {
	if uc.cfg.NotificationChannelID != "" {
		stamp := uc.now().In(uc.cfg.Location).Format(timestampLayout)
		if _, err := uc.discord.SendMessage(ctx, uc.cfg.NotificationChannelID, fmt.Sprintf(msgSubmitted, evt.AuthorName, stamp)); err != nil {
			uc.l.Warnf(ctx, "%s: broadcast failed: %v", logPrefixSubmit, err)
		}
	} else {
		uc.l.Warnf(ctx, "%s: notification channel not configured", logPrefixSubmit)
	}

	if _, err := uc.discord.SendDM(ctx, evt.AuthorID, fmt.Sprintf(msgSubmittedDM, att.Name, evt.AuthorID)); err != nil {
		uc.l.Warnf(ctx, "%s: DM to %s failed: %v", logPrefixSubmit, evt.AuthorID, err)
	}
}

func (uc *implUseCase) reply(ctx context.Context, evt model.Event, text string) {
	if _, err := uc.discord.Reply(ctx, evt.ChannelID, evt.MessageID, text); err != nil {
		uc.l.Warnf(ctx, "%s: reply failed: %v", logPrefixSubmit, err)
	}
}

func (uc *implUseCase) deleteQuietly(ctx context.Context, channelID, messageID string) {
	if messageID == "" {
		return
	}
	if err := uc.discord.DeleteMessage(ctx, channelID, messageID); err != nil {
		uc.l.Debugf(ctx, "%s: cleanup delete of %s failed: %v", logPrefixSubmit, messageID, err)
	}
}
