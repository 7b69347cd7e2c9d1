package gitcmds

import (
	"errors"
	"fmt"
	"os"
	"strings"

	goGitPkg "github.com/go-git/go-git/v5"
	"github.com/untillpro/goutils/exec"
	"github.com/untillpro/goutils/logger"
)

const (
	git    = "git"
	push   = "push"
	mimm   = "-m"
	origin = "origin"
	err128 = "128"

	DefaultBatchSize     = 500
	DefaultMessagePrefix = "Auto-batch commit: Part"

	// BatchListFileName is the pathspec file handed to `git add --pathspec-from-file`.
	// It lives in the working dir for the duration of a single batch only.
	BatchListFileName = "temp_batch_list.txt"

	// porcelain -z records are "<2-char status><space><path>"
	statusPrefixLen = 3

	listFilePerm os.FileMode = 0644
)

func CheckIfGitRepo(wd string) (string, error) {
	stdout, _, err := new(exec.PipedExec).
		Command(git, "status", "-s").
		WorkingDir(wd).
		RunToStrings()
	if err != nil {
		if strings.Contains(err.Error(), err128) {
			err = errors.New("this is not a git repository")
		}
	}

	return stdout, err
}

// ChangedFiles returns the paths of all pending changes (modified, added,
// deleted and untracked) in the order git reports them. Duplicates are kept.
func ChangedFiles(wd string) ([]string, error) {
	stdout, stderr, err := new(exec.PipedExec).
		Command(git, "status", "--porcelain", "-z").
		WorkingDir(wd).
		RunToStrings()
	if err != nil {
		logger.Verbose(stderr)

		if len(stderr) > 0 {
			return nil, errors.New(stderr)
		}

		return nil, fmt.Errorf("git status failed: %w", err)
	}

	return parseStatusRecords(stdout), nil
}

// parseStatusRecords parses NUL-delimited `git status --porcelain -z` output.
// NUL delimiting keeps paths with spaces, newlines or quotes intact. Records
// whose path part is empty are skipped; invalid byte sequences are dropped
// rather than failing the run.
func parseStatusRecords(out string) []string {
	records := strings.Split(out, "\x00")
	paths := make([]string, 0, len(records))
	for _, record := range records {
		if len(record) <= statusPrefixLen {
			continue
		}
		path := strings.ToValidUTF8(record[statusPrefixLen:], "")
		if path == "" {
			continue
		}
		paths = append(paths, path)
	}

	return paths
}

// Stage stages exactly the paths listed in listFile, one per line. Passing
// paths through a file keeps arbitrarily large batches clear of command-line
// length limits.
func Stage(wd, listFile string) error {
	stdout, stderr, err := new(exec.PipedExec).
		Command(git, "add", "--pathspec-from-file="+listFile).
		WorkingDir(wd).
		RunToStrings()
	if err != nil {
		logger.Verbose(stderr)

		if len(stderr) > 0 {
			return errors.New(stderr)
		}

		return fmt.Errorf("git add failed: %w", err)
	}
	logger.Verbose(stdout)

	return nil
}

// Commit creates one commit with the given message from the staged paths.
func Commit(wd, message string) error {
	stdout, stderr, err := new(exec.PipedExec).
		Command(git, "commit", mimm, message).
		WorkingDir(wd).
		RunToStrings()
	if err != nil {
		logger.Verbose(stderr)

		if len(stderr) > 0 {
			return errors.New(stderr)
		}

		return fmt.Errorf("git commit failed: %w", err)
	}
	logger.Verbose(stdout)

	return nil
}

// Push synchronizes local commits with the remote. Callers decide whether a
// failure is fatal; for batch uploads it is not.
func Push(wd string) error {
	stdout, stderr, err := new(exec.PipedExec).
		Command(git, push).
		WorkingDir(wd).
		RunToStrings()
	if err != nil {
		logger.Verbose(stderr)

		if len(stderr) > 0 {
			return errors.New(stderr)
		}

		return fmt.Errorf("git push failed: %w", err)
	}
	logger.Verbose(stdout)

	return nil
}

// RemoteInfo reports the current branch and the origin URL, if any.
func RemoteInfo(wd string) (branch, url string, err error) {
	repo, err := goGitPkg.PlainOpenWithOptions(wd, &goGitPkg.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", fmt.Errorf("failed to open git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	branch = head.Name().Short()

	remote, err := repo.Remote(origin)
	if err != nil {
		// no origin configured
		return branch, "", nil
	}
	if urls := remote.Config().URLs; len(urls) > 0 {
		url = urls[0]
	}

	return branch, url, nil
}
