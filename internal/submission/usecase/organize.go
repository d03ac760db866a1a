package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-submission-bot/internal/submission"
	"task-submission-bot/pkg/gdrive"
)

func (uc *implUseCase) Organize(ctx context.Context, subfolder string) (submission.OrganizeOutput, error) {
	subfolder = strings.TrimSpace(subfolder)
	out := submission.OrganizeOutput{Subfolder: subfolder}
	if subfolder == "" {
		return out, submission.ErrEmptySubfolder
	}

	members, err := uc.memberFolders(ctx)
	if err != nil {
		return out, err
	}

	for _, m := range members {
		files, err := uc.drive.ListChildren(ctx, m.ID, gdrive.ChildFilter{Kind: gdrive.KindFiles})
		if err != nil {
			return out, fmt.Errorf("list files of %q: %w", m.Name, err)
		}
		if len(files) == 0 {
			continue
		}

		dest, err := uc.drive.CreateFolder(ctx, m.ID, subfolder)
		if err != nil {
			return out, fmt.Errorf("create %q under %q: %w", subfolder, m.Name, err)
		}
		out.Folders++

		for _, f := range files {
			if err := uc.drive.Move(ctx, f.ID, m.ID, dest.ID); err != nil {
				return out, fmt.Errorf("move %q into %q: %w", f.Name, subfolder, err)
			}
			out.Files++
		}
		uc.l.Infof(ctx, "%s: moved %d files of %s into %s", logPrefixOrganize, len(files), m.Name, subfolder)
	}
	return out, nil
}
