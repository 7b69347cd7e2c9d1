package commands

import (
	"github.com/untillpro/qb/gitcmds"
	"github.com/untillpro/qb/vcs"
)

// Status shows pending changes and the batch plan without touching the repo
func Status(cfgUpload vcs.CfgUpload, wd string) error {
	if _, err := gitcmds.CheckIfGitRepo(wd); err != nil {
		return err
	}

	return gitcmds.Status(cfgUpload, wd)
}
