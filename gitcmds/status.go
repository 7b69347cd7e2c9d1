/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitcmds

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/untillpro/qb/utils"
	"github.com/untillpro/qb/vcs"
)

// Status shows the remote, the current branch and the batch plan an upload
// run would execute. Read-only: nothing is staged, committed or pushed.
func Status(cfg vcs.CfgUpload, wd string) error {
	branch, url, err := RemoteInfo(wd)
	if err != nil {
		return err
	}
	if len(url) > 0 {
		color.New(color.FgHiCyan).Printf("%s -> %s %s\n", branch, origin, url)
	} else {
		color.New(color.FgHiCyan).Printf("%s (no origin configured)\n", branch)
	}

	files, err := ChangedFiles(wd)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("There is nothing to commit")

		return nil
	}

	batches := utils.SplitInBatches(files, cfg.BatchSize)
	fmt.Printf("%d changed files -> %d batches of up to %d files\n", len(files), len(batches), cfg.BatchSize)
	for i, batch := range batches {
		fmt.Printf("  %q: %d files\n", commitMessage(cfg.MessagePrefix, i+1, len(batches)), len(batch))
	}

	return nil
}
