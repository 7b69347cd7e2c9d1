package commands

import (
	"github.com/untillpro/qb/gitcmds"
	"github.com/untillpro/qb/vcs"
)

// U commits and pushes all pending changes in batches
func U(cfgUpload vcs.CfgUpload, wd string) error {
	if _, err := gitcmds.CheckIfGitRepo(wd); err != nil {
		return err
	}

	return gitcmds.Upload(cfgUpload, wd)
}
