package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"task-submission-bot/internal/model"
	"task-submission-bot/internal/submission"
	"task-submission-bot/pkg/gdrive"
)

// memberFolders lists the member folders in the order Drive returns them.
// The same slice is used for the prompt and for resolving the reply.
func (uc *implUseCase) memberFolders(ctx context.Context) ([]model.FolderNode, error) {
	root, err := uc.drive.FindFolder(ctx, uc.cfg.MembersFolder)
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", uc.cfg.MembersFolder, err)
	}

	members, err := uc.drive.ListChildren(ctx, root.ID, gdrive.ChildFilter{Kind: gdrive.KindFolders})
	if err != nil {
		return nil, fmt.Errorf("list member folders: %w", err)
	}
	return members, nil
}

func buildPrompt(members []model.FolderNode) string {
	var sb strings.Builder
	sb.WriteString(msgSelectPrompt)
	for i, m := range members {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, m.Name)
	}
	return sb.String()
}

// parseSelection resolves a 1-based reply against members.
func parseSelection(text string, members []model.FolderNode) (model.FolderNode, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > len(members) {
		return model.FolderNode{}, submission.ErrInvalidSelection
	}
	return members[n-1], nil
}
