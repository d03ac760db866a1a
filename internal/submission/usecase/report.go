package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"task-submission-bot/internal/submission"
	"task-submission-bot/pkg/gdrive"
)

func (uc *implUseCase) Report(ctx context.Context, taskNumber int) (submission.ReportOutput, error) {
	out := submission.ReportOutput{TaskNumber: taskNumber}

	members, err := uc.memberFolders(ctx)
	if err != nil {
		return out, err
	}

	// One listing per member; the version scan below only reads these sets.
	labels := make([]map[string]struct{}, len(members))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportFanout)
	for i, m := range members {
		i, m := i, m
		g.Go(func() error {
			subs, err := uc.drive.ListChildren(gctx, m.ID, gdrive.ChildFilter{Kind: gdrive.KindFolders})
			if err != nil {
				return fmt.Errorf("list subfolders of %q: %w", m.Name, err)
			}
			set := make(map[string]struct{}, len(subs))
			for _, s := range subs {
				set[s.Name] = struct{}{}
			}
			labels[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	// Version-major: every member is checked for K before K+1 is considered.
	for k := 0; ; k++ {
		label := submission.VersionLabel(taskNumber, k)
		var names []string
		for i, m := range members {
			if _, ok := labels[i][label]; ok {
				names = append(names, m.Name)
			}
		}
		if len(names) == 0 {
			break
		}
		out.Versions = append(out.Versions, submission.VersionEntry{Label: label, Members: names})
	}

	uc.l.Infof(ctx, "%s: task %d has %d versions across %d members", logPrefixReport, taskNumber, len(out.Versions), len(members))
	return out, nil
}
