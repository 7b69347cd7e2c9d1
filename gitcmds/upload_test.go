/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package gitcmds

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/untillpro/goutils/exec"
	"github.com/untillpro/qb/vcs"
)

func execGit(t *testing.T, wd string, args ...string) string {
	t.Helper()
	stdout, stderr, err := new(exec.PipedExec).
		Command("git", args...).
		WorkingDir(wd).
		RunToStrings()
	require.NoError(t, err, stderr)

	return stdout
}

// newTestRepo creates an empty repo with a local identity.
// push.default=current lets `git push` work without a configured upstream.
func newTestRepo(t *testing.T) string {
	t.Helper()
	wd := t.TempDir()
	execGit(t, wd, "init", "-b", "main")
	execGit(t, wd, "config", "user.email", "qb@test.local")
	execGit(t, wd, "config", "user.name", "qb test")
	execGit(t, wd, "config", "commit.gpgsign", "false")
	execGit(t, wd, "config", "push.default", "current")

	return wd
}

func addBareOrigin(t *testing.T, wd string) string {
	t.Helper()
	bare := filepath.Join(t.TempDir(), "origin.git")
	execGit(t, wd, "init", "--bare", "-b", "main", bare)
	execGit(t, wd, "remote", "add", "origin", bare)

	return bare
}

func writeFiles(t *testing.T, wd string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(wd, name), []byte(name+"\n"), 0644))
	}
}

func TestUploadBatchesAndPushes(t *testing.T) {
	wd := newTestRepo(t)
	bare := addBareOrigin(t, wd)
	writeFiles(t, wd, "a.txt", "b.txt", "c.txt", "d.txt", "e.txt")

	cfg := vcs.CfgUpload{BatchSize: 2, MessagePrefix: DefaultMessagePrefix}
	require.NoError(t, Upload(cfg, wd))

	// 5 files, batch size 2 -> 3 commits, all pushed
	require.Equal(t, "3", strings.TrimSpace(execGit(t, wd, "rev-list", "--count", "HEAD")))
	require.Equal(t, "3", strings.TrimSpace(execGit(t, bare, "rev-list", "--count", "main")))

	subjects := strings.Split(strings.TrimSpace(execGit(t, wd, "log", "--format=%s", "--reverse")), "\n")
	require.Equal(t, []string{
		"Auto-batch commit: Part 1 of 3",
		"Auto-batch commit: Part 2 of 3",
		"Auto-batch commit: Part 3 of 3",
	}, subjects)

	// the pathspec file never survives a run
	_, err := os.Stat(filepath.Join(wd, BatchListFileName))
	require.True(t, os.IsNotExist(err))

	// the working tree is clean, a rerun is a no-op
	files, err := ChangedFiles(wd)
	require.NoError(t, err)
	require.Empty(t, files)
	require.NoError(t, Upload(cfg, wd))
	require.Equal(t, "3", strings.TrimSpace(execGit(t, wd, "rev-list", "--count", "HEAD")))
}

func TestUploadHaltsWhenPushFails(t *testing.T) {
	wd := newTestRepo(t)
	execGit(t, wd, "remote", "add", "origin", filepath.Join(t.TempDir(), "no-such-repo.git"))
	writeFiles(t, wd, "a.txt", "b.txt", "c.txt")

	cfg := vcs.CfgUpload{BatchSize: 1, MessagePrefix: DefaultMessagePrefix}

	// push failure is not an error: the run halts and reports
	require.NoError(t, Upload(cfg, wd))

	// batch 1 is committed, batches 2 and 3 are never staged or committed
	require.Equal(t, "1", strings.TrimSpace(execGit(t, wd, "rev-list", "--count", "HEAD")))
	files, err := ChangedFiles(wd)
	require.NoError(t, err)
	require.Len(t, files, 2)

	_, err = os.Stat(filepath.Join(wd, BatchListFileName))
	require.True(t, os.IsNotExist(err))
}

func TestUploadNothingToCommit(t *testing.T) {
	wd := newTestRepo(t)

	require.NoError(t, Upload(vcs.CfgUpload{BatchSize: DefaultBatchSize, MessagePrefix: DefaultMessagePrefix}, wd))

	// no commit was created
	_, _, err := new(exec.PipedExec).
		Command("git", "rev-parse", "--verify", "HEAD").
		WorkingDir(wd).
		RunToStrings()
	require.Error(t, err)
}

func TestProcessBatchStagingFailureIsFatal(t *testing.T) {
	wd := newTestRepo(t)

	cfg := vcs.CfgUpload{BatchSize: 1, MessagePrefix: DefaultMessagePrefix}
	halted, err := processBatch(cfg, wd, []string{"no-such-file.txt"}, 1, 1)
	require.Error(t, err)
	require.False(t, halted)

	// no commit was created and the pathspec file is removed anyway
	_, _, revErr := new(exec.PipedExec).
		Command("git", "rev-parse", "--verify", "HEAD").
		WorkingDir(wd).
		RunToStrings()
	require.Error(t, revErr)

	_, statErr := os.Stat(filepath.Join(wd, BatchListFileName))
	require.True(t, os.IsNotExist(statErr))
}

func TestUploadKeepsSpecialCharacterPaths(t *testing.T) {
	wd := newTestRepo(t)
	bare := addBareOrigin(t, wd)
	writeFiles(t, wd, "with space.txt", "unicode-файл.txt")

	require.NoError(t, Upload(vcs.CfgUpload{BatchSize: DefaultBatchSize, MessagePrefix: DefaultMessagePrefix}, wd))

	require.Equal(t, "1", strings.TrimSpace(execGit(t, bare, "rev-list", "--count", "main")))
	files, err := ChangedFiles(wd)
	require.NoError(t, err)
	require.Empty(t, files)
}
