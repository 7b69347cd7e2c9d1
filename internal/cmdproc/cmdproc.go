package cmdproc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"github.com/untillpro/qb/gitcmds"
	"github.com/untillpro/qb/internal/commands"
	"github.com/untillpro/qb/vcs"
)

type qbGlobalParams struct {
	Dir string
}

func uploadCmd(params *qbGlobalParams) *cobra.Command {
	var cfgUpload vcs.CfgUpload
	var cmd = &cobra.Command{
		Use:   commands.CommandNameU,
		Short: pushParamDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := getWorkingDir(params)
			if err != nil {
				return err
			}

			return commands.U(cfgUpload, wd)
		},
	}
	cmd.Flags().IntVarP(&cfgUpload.BatchSize, batchSizeWord, batchSizeParam, gitcmds.DefaultBatchSize, batchSizeComment)
	cmd.Flags().StringVarP(&cfgUpload.MessagePrefix, pushMessageWord, pushMessageParam, gitcmds.DefaultMessagePrefix, pushMsgComment)

	return cmd
}

func versionCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   commands.CommandNameVersion,
		Short: versionParamDesc,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Version()
		},
	}

	return cmd
}

// CheckCommands verifies if the required commands are installed on the system
func CheckCommands(cmds []string) error {
	missing := []string{}
	for _, cmd := range cmds {
		if _, err := exec.LookPath(cmd); err != nil {
			missing = append(missing, cmd)
		}
	}

	if len(missing) > 0 {
		if len(missing) == 1 {
			return fmt.Errorf("missing required command: %s", missing[0])
		}

		return fmt.Errorf("missing required commands: %v", missing)
	}

	return nil
}

// ExecRootCmd executes the root command with the given arguments.
// Returns:
// - context.Context: The context of the executed command
// - error: Any error that occurred during execution.
func ExecRootCmd(ctx context.Context, args []string) (context.Context, error) {
	params := &qbGlobalParams{}
	var cfgStatus vcs.CfgUpload

	rootCmd := PrepareRootCmd(
		ctx,
		"qb",
		"Batch git committer",
		args,
		uploadCmd(params),
		versionCmd(),
	)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		wd, err := getWorkingDir(params)
		if err != nil {
			return err
		}

		return commands.Status(cfgStatus, wd)
	}
	rootCmd.Flags().IntVarP(&cfgStatus.BatchSize, batchSizeWord, batchSizeParam, gitcmds.DefaultBatchSize, batchSizeComment)
	rootCmd.Flags().StringVarP(&cfgStatus.MessagePrefix, pushMessageWord, pushMessageParam, gitcmds.DefaultMessagePrefix, pushMsgComment)
	initChangeDirFlags(rootCmd.Commands(), params)

	if len(args) < 2 || !cmdsSkipPrerequisites[args[1]] {
		if err := CheckCommands(requiredCommands); err != nil {
			return ctx, err
		}
	}

	return ExecCommandAndCatchInterrupt(rootCmd)
}

func getWorkingDir(params *qbGlobalParams) (string, error) {
	if params.Dir != "" {
		return params.Dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return wd, nil
}

func initChangeDirFlags(cmds []*cobra.Command, params *qbGlobalParams) {
	for _, cmd := range cmds {
		if cmd.Name() == commands.CommandNameVersion {
			continue
		}
		cmd.Flags().StringVarP(&params.Dir, "change-dir", "C", "", "change to dir before running the command. Any files named on the command line are interpreted after changing directories")
	}
}

// ExecCommandAndCatchInterrupt executes the given command and catches interrupts.
// Returns:
// - context.Context: The context of the executed command
// - error: Any error that occurred during execution.
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) (context.Context, error) {
	cmdExec := func(ctx context.Context) (*cobra.Command, error) {
		return cmd.ExecuteContextC(ctx)
	}

	return goAndCatchInterrupt(cmd, cmdExec)
}

// goAndCatchInterrupt runs the given function in a separate goroutine and catches interrupts.
// Returns:
// - context.Context: The context of the executed command
// - error: Any error that occurred during execution.
func goAndCatchInterrupt(cmd *cobra.Command, f func(ctx context.Context) (*cobra.Command, error)) (context.Context, error) {
	var cmdExecuted *cobra.Command

	var signals = make(chan os.Signal, 1)

	ctxWithCancel, cancel := context.WithCancel(cmd.Context())
	signal.Notify(signals, os.Interrupt)

	var err error
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()

		cmdExecuted, err = f(ctxWithCancel)
		cancel()
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case <-ctxWithCancel.Done():
	}
	logger.Verbose("waiting for function to finish...")
	wg.Wait()

	return cmdExecuted.Context(), err
}

func PrepareRootCmd(ctx context.Context, use string, short string, args []string, cmds ...*cobra.Command) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if ok, _ := cmd.Flags().GetBool("trace"); ok {
				logger.SetLogLevel(logger.LogLevelTrace)
				logger.Verbose("Using logger.LogLevelTrace...")
			} else if ok, _ := cmd.Flags().GetBool("verbose"); ok {
				logger.SetLogLevel(logger.LogLevelVerbose)
				logger.Verbose("Using logger.LogLevelVerbose...")
			}
		},
	}

	rootCmd.SetContext(ctx)
	rootCmd.SetArgs(args[1:])
	rootCmd.AddCommand(cmds...)
	// Set context for all subcommands
	for _, cmd := range cmds {
		cmd.SetContext(ctx)
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("trace", false, "Extremely verbose output")
	rootCmd.SilenceUsage = true

	return rootCmd
}
