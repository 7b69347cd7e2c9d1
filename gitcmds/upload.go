/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitcmds

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/untillpro/goutils/logger"
	"github.com/untillpro/qb/utils"
	"github.com/untillpro/qb/vcs"
)

// Upload commits and pushes all pending changes in fixed-size batches.
// Batches are processed strictly in order: each one is staged through the
// pathspec file, committed as "<prefix> <i> of <N>" and pushed before the
// next one starts. A staging or commit failure aborts the run; a push
// failure halts it gracefully, leaving the already created commits local.
func Upload(cfg vcs.CfgUpload, wd string) error {
	files, err := ChangedFiles(wd)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("There is nothing to commit")

		return nil
	}

	batches := utils.SplitInBatches(files, cfg.BatchSize)
	fmt.Printf("Found %d changed files, processing in %d batches\n", len(files), len(batches))

	for i, batch := range batches {
		fmt.Printf("\n--- Batch %d/%d (%d files) ---\n", i+1, len(batches), len(batch))

		halted, err := processBatch(cfg, wd, batch, i+1, len(batches))
		if err != nil {
			return err
		}
		if halted {
			break
		}
	}

	return nil
}

// processBatch stages, commits and pushes one batch. halted reports that the
// push failed and no further batches must be processed; err is fatal.
// The pathspec file is removed on every exit path.
func processBatch(cfg vcs.CfgUpload, wd string, paths []string, ordinal, total int) (halted bool, err error) {
	listFile := filepath.Join(wd, BatchListFileName)
	if err := writeBatchList(listFile, paths); err != nil {
		return false, err
	}
	defer func() {
		if removeErr := os.Remove(listFile); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Error("failed to remove batch list file:", removeErr)
		}
	}()

	if err := Stage(wd, listFile); err != nil {
		return false, err
	}

	if err := Commit(wd, commitMessage(cfg.MessagePrefix, ordinal, total)); err != nil {
		return false, err
	}

	fmt.Printf("Pushing batch %d/%d...\n", ordinal, total)
	if err := Push(wd); err != nil {
		logger.Verbose(err.Error())
		color.New(color.FgHiRed).Printf("\n[!] Push failed for batch %d of %d.\n", ordinal, total)
		fmt.Println("This is usually a transient network condition.")
		fmt.Println("The commits made so far are kept locally; check the network and run 'git push' to upload them in one go.")

		return true, nil
	}

	return false, nil
}

func commitMessage(prefix string, ordinal, total int) string {
	return fmt.Sprintf("%s %d of %d", prefix, ordinal, total)
}

// writeBatchList writes one path per line, UTF-8, so that arbitrary Unicode
// paths survive the round trip through `git add --pathspec-from-file`.
func writeBatchList(listFile string, paths []string) error {
	content := strings.Join(paths, "\n") + "\n"
	if err := os.WriteFile(listFile, []byte(content), listFilePerm); err != nil {
		return fmt.Errorf("failed to write batch list file: %w", err)
	}

	return nil
}
