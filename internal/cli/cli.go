// Package cli builds the cra2parcel root command.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/indaco/cra2parcel/internal/config"
	"github.com/indaco/cra2parcel/internal/core"
	"github.com/indaco/cra2parcel/internal/migrate"
	"github.com/indaco/cra2parcel/internal/printer"
	"github.com/indaco/cra2parcel/internal/tui"
	"github.com/indaco/cra2parcel/internal/vcs"
	"github.com/indaco/cra2parcel/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// Runner performs the migration.
type Runner interface {
	Run(ctx context.Context) (*migrate.Report, error)
}

// Prompter asks the user to confirm the run.
type Prompter interface {
	Confirm(title, description string) (bool, error)
}

type tuiPrompter struct{}

func (tuiPrompter) Confirm(title, description string) (bool, error) {
	return tui.Confirm(title, description)
}

// WorkTree reports uncommitted changes in the project.
type WorkTree interface {
	Dirty(dir string) (bool, error)
}

// Deps are the collaborators behind the root command.
type Deps struct {
	NewRunner     func(dir string) Runner
	Prompter      Prompter
	WorkTree      WorkTree
	IsInteractive func() bool
}

// DefaultDeps migrates on the OS filesystem and prompts through huh.
func DefaultDeps() Deps {
	return Deps{
		NewRunner: func(dir string) Runner {
			return migrate.New(core.NewOSFileSystem(), dir).WithSpinner(tui.Spin)
		},
		Prompter:      tuiPrompter{},
		WorkTree:      vcs.NewGitWorkTree(),
		IsInteractive: tui.IsInteractive,
	}
}

const (
	confirmTitle       = "Migrate this Create React App project to Parcel?"
	confirmDescription = "Files are rewritten in place and react-scripts is uninstalled. There is no rollback."
)

// New builds and returns the root CLI command.
func New(cfg *config.Config, deps Deps) *urfavecli.Command {
	var noColorFlag, yesFlag bool

	return &urfavecli.Command{
		Name:      "cra2parcel",
		Version:   fmt.Sprintf("v%s", version.GetVersion()),
		Usage:     "Migrate a Create React App project to Parcel",
		UsageText: "cra2parcel [--yes] [--no-color]",
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "Skip the confirmation prompt",
				Value:       cfg.AssumeYes,
				Destination: &yesFlag,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag || os.Getenv("NO_COLOR") != "")
			if !tui.SetTheme(cfg.Theme) && cfg.Theme != "" {
				printer.PrintWarning(fmt.Sprintf("Unknown theme %q, using %q", cfg.Theme, tui.DefaultTheme))
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			if cmd.Args().Present() {
				return urfavecli.Exit(fmt.Sprintf("unexpected arguments: %s", strings.Join(cmd.Args().Slice(), " ")), 1)
			}

			// Outside a git repository there is nothing to warn about.
			if dirty, err := deps.WorkTree.Dirty(cfg.Dir); err == nil && dirty {
				printer.PrintWarning("Uncommitted changes detected. Files are rewritten in place with no rollback; commit or stash first.")
			}

			if !yesFlag && deps.IsInteractive() {
				ok, err := deps.Prompter.Confirm(confirmTitle, confirmDescription)
				if err != nil {
					return urfavecli.Exit(fmt.Sprintf("confirmation failed: %v", err), 1)
				}
				if !ok {
					printer.PrintWarning("Migration cancelled. No files were changed.")
					return nil
				}
			}

			report, err := deps.NewRunner(cfg.Dir).Run(ctx)
			if err != nil {
				return urfavecli.Exit(err.Error(), 1)
			}
			printSummary(report)
			return nil
		},
		ExitErrHandler: func(context.Context, *urfavecli.Command, error) {},
	}
}

// printSummary reports a successful run and the next command to try.
func printSummary(report *migrate.Report) {
	fmt.Println()
	printer.PrintBanner("Successfully migrated from Create React App to Parcel!")
	fmt.Println()
	fmt.Printf("Run %s to start the dev server.\n", printer.Success(report.Manager.String()+" start"))
	fmt.Println("Parcel may install additional plugins as needed when building your app for the first time.")
	fmt.Println()
}
