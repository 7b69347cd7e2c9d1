package cmdproc

import "github.com/untillpro/qb/internal/commands"

const (
	pushParamDesc    = "Commit and push pending changes in fixed-size batches"
	versionParamDesc = "Print qb version"

	batchSizeWord    = "batch-size"
	batchSizeParam   = "b"
	batchSizeComment = "Maximum number of files per commit"

	pushMessageWord  = "message"
	pushMessageParam = "m"
	pushMsgComment   = "Commit message prefix; the batch ordinal and total are appended"
)

var (
	requiredCommands      = []string{"git"}
	cmdsSkipPrerequisites = map[string]bool{
		commands.CommandNameVersion: true,
		"help":                      true,
	}
)
