package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
)

type WatchCmd struct {
	Ledger       string `help:"Account ledger input filename." arg:""`
	Transactions string `help:"Transaction log input filename." arg:""`
	Output       string `help:"Statement output filename, rewritten on each change." short:"o" default:"statement.txt"`
	AmountColumn int    `help:"Column for amount alignment in transaction lines." default:"48"`
}

// Run regenerates the report whenever an input file changes, until
// interrupted.
func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, file := range []string{cmd.Ledger, cmd.Transactions} {
		if err := watcher.Add(file); err != nil {
			return fmt.Errorf("failed to watch %s: %w", file, err)
		}
	}

	// Generate once up front so the output exists before the first change.
	if err := cmd.regenerate(runCtx, ctx); err != nil {
		return err
	}

	printInfof(ctx.Stdout, "Watching %s and %s",
		pathStyle.Render(cmd.Ledger), pathStyle.Render(cmd.Transactions))

	// Editors often write files in multiple steps; debounce events.
	const debounceDelay = 100 * time.Millisecond
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-runCtx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				if err := cmd.regenerate(runCtx, ctx); err != nil {
					printError(ctx.Stderr, err.Error())
				}
				// Re-add in case the editor replaced the file.
				_ = watcher.Add(cmd.Ledger)
				_ = watcher.Add(cmd.Transactions)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("file watcher error: %v", err))
		}
	}
}

func (cmd *WatchCmd) regenerate(runCtx context.Context, ctx *kong.Context) error {
	report, err := generateReport(runCtx, cmd.Ledger, cmd.Transactions, cmd.AmountColumn)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cmd.Output, report, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Output, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote statement to %s", pathStyle.Render(cmd.Output)))
	return nil
}
