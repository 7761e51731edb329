package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.commitcheck/internal/termfix"

import (
	"fmt"
	"io"
	"os"

	"github.com/wahlandcase/attuned.commitcheck/internal/app"
	"github.com/wahlandcase/attuned.commitcheck/internal/commitmsg"
	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/git"
	"github.com/wahlandcase/attuned.commitcheck/internal/hook"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at release build time
var version = "dev"

var (
	dryRun     bool
	testUpdate bool
	ciBase     string
	ciHead     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "attcm",
		Short:   "Compose and validate structured commit messages",
		Version: version,
		RunE:    runTUI,
	}
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate commits and branches without making changes")
	rootCmd.Flags().BoolVar(&testUpdate, "test-update", false, "Show a fake update prompt")
	_ = rootCmd.Flags().MarkHidden("test-update")

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a commit message from a file or stdin",
		Long: "Validate a commit message against the type|taskid|date|description format.\n" +
			"Reads from the given file, or from stdin when the file is - or omitted.\n" +
			"Intended as the commit-msg hook: exits 0 when the message is accepted,\n" +
			"1 when it is rejected.",
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	ciCmd := &cobra.Command{
		Use:   "ci",
		Short: "Validate every commit between two revisions",
		Long: "Validate the subject line of every commit reachable from --head but not\n" +
			"from --base. All failures are reported together, so one bad commit never\n" +
			"hides another. Exits 1 if any commit is rejected.",
		RunE: runCI,
	}
	ciCmd.Flags().StringVar(&ciBase, "base", "", "Base revision (defaults to the configured base branch)")
	ciCmd.Flags().StringVar(&ciHead, "head", "HEAD", "Head revision")

	hookCmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the commit-msg hook in the current repository",
	}
	hookCmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: "Install the commit-msg hook",
		Args:  cobra.NoArgs,
		RunE:  runHookInstall,
	})
	hookCmd.AddCommand(&cobra.Command{
		Use:   "uninstall",
		Short: "Remove the commit-msg hook",
		Args:  cobra.NoArgs,
		RunE:  runHookUninstall,
	})

	rootCmd.AddCommand(checkCmd, ciCmd, hookCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := app.New(cfg, dryRun, testUpdate, version)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read commit message: %w", err)
	}

	message := commitmsg.TrimMessage(string(data))
	verdict := commitmsg.Validate(message)
	if commitmsg.IsAccepted(verdict) {
		return nil
	}

	field, _ := commitmsg.RejectedField(verdict)
	fmt.Fprintf(cmd.ErrOrStderr(), "commit message rejected: invalid %s\n\n", field)
	fmt.Fprint(cmd.ErrOrStderr(), commitmsg.FormatHelp())
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	os.Exit(1)
	return nil
}

func runCI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	info, err := git.FindRepoInfo(wd)
	if err != nil {
		return fmt.Errorf("not inside a git repository: %w", err)
	}

	base := ciBase
	if base == "" {
		base = cfg.CI.BaseBranch
	}
	if base == "" {
		base = info.MainBranch
	}

	commits, err := git.CommitsBetween(info.Path, base, ciHead)
	if err != nil {
		return fmt.Errorf("failed to list commits between %s and %s: %w", base, ciHead, err)
	}

	var rejected int
	for _, c := range commits {
		verdict := commitmsg.Validate(c.Subject)
		if commitmsg.IsAccepted(verdict) {
			continue
		}
		field, _ := commitmsg.RejectedField(verdict)
		fmt.Fprintf(cmd.ErrOrStderr(), "%s invalid %s: %q\n", c.Hash, field, c.Subject)
		rejected++
	}

	if rejected > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\n%d of %d commits rejected\n\n", rejected, len(commits))
		fmt.Fprint(cmd.ErrOrStderr(), commitmsg.FormatHelp())
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		os.Exit(1)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d commits checked, all accepted\n", len(commits))
	return nil
}

func runHookInstall(cmd *cobra.Command, args []string) error {
	info, err := currentRepo()
	if err != nil {
		return err
	}
	if err := hook.Install(info.Path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "commit-msg hook installed")
	return nil
}

func runHookUninstall(cmd *cobra.Command, args []string) error {
	info, err := currentRepo()
	if err != nil {
		return err
	}
	if err := hook.Uninstall(info.Path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "commit-msg hook removed")
	return nil
}

func currentRepo() (*models.RepoInfo, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	info, err := git.FindRepoInfo(wd)
	if err != nil {
		return nil, fmt.Errorf("not inside a git repository: %w", err)
	}
	return info, nil
}
