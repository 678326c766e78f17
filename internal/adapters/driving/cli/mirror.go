package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	configfile "github.com/docmirror/docmirror-cli/internal/adapters/driven/config/file"
	"github.com/docmirror/docmirror-cli/internal/adapters/driven/fetch"
	storagefile "github.com/docmirror/docmirror-cli/internal/adapters/driven/storage/file"
	"github.com/docmirror/docmirror-cli/internal/adapters/driven/storage/sqlite"
	"github.com/docmirror/docmirror-cli/internal/core/domain"
	"github.com/docmirror/docmirror-cli/internal/core/ports/driven"
	"github.com/docmirror/docmirror-cli/internal/core/services"
	"github.com/docmirror/docmirror-cli/internal/logger"
)

// runMirror wires the adapters and services for one run and executes
// the mirror pass.
func runMirror(cmd *cobra.Command, _ []string) error {
	cfg, err := configfile.Load(flagConfig)
	if err != nil {
		return err
	}
	site := cfg.ToSite()

	startedAt := time.Now()
	runID := uuid.NewString()

	workspace, err := storagefile.NewWorkspace(runID, flagKeepTemp)
	if err != nil {
		return err
	}
	// Scratch storage is released on every exit path, including
	// interrupts, unless the operator asked to keep it.
	defer func() {
		if err := workspace.Release(); err != nil {
			logger.Warn("Scratch cleanup: %v", err)
		}
	}()

	if flagKeepTemp {
		closeLog, err := logger.TeeFile(workspace.LogPath())
		if err != nil {
			logger.Warn("Could not open run log: %v", err)
		} else {
			defer closeLog() //nolint:errcheck // Best-effort log close
		}
	}

	reports, err := storagefile.NewReportStore(cfg.Layout.ReportsDir, startedAt)
	if err != nil {
		return err
	}
	defer reports.Close() //nolint:errcheck // Best-effort report close

	store, err := storagefile.NewDocStore(cfg.Layout.TargetDir)
	if err != nil {
		return err
	}

	runCtx := domain.RunContext{
		RunID:      runID,
		StartedAt:  startedAt,
		ScratchDir: workspace.Dir(),
		ReportPath: reports.Path(),
		KeepTemp:   flagKeepTemp,
	}
	if flagKeepTemp {
		runCtx.LogPath = workspace.LogPath()
	}

	fetcher := fetch.NewClient(site, workspace.Dir(), cfg.Fetch.RequestsPerSecond)

	validator, err := services.NewValidator(site.PathPrefix)
	if err != nil {
		return err
	}
	discoverer, err := services.NewDiscoverer(site, fetcher, validator)
	if err != nil {
		return err
	}
	engine := services.NewSyncEngine(site, fetcher, store, reports)

	// Run history is bookkeeping; a broken database downgrades to a
	// warning rather than blocking the mirror.
	var history driven.HistoryStore
	if h, err := sqlite.NewHistoryStore(cfg.Layout.DataDir); err != nil {
		logger.Warn("Run history unavailable: %v", err)
	} else {
		history = h
		defer h.Close() //nolint:errcheck // Best-effort store close
	}

	mirror := services.NewMirror(runCtx, fetcher, discoverer, engine, history)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := mirror.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(cmd, runCtx, summary)

	// Individual failures are non-fatal, but a run where every fetch
	// failed exits non-zero.
	if summary.Discovered > 0 && summary.Failed == summary.Discovered {
		return fmt.Errorf("all %d document fetches failed", summary.Discovered)
	}
	return nil
}

// printSummary renders the end-of-run summary.
func printSummary(cmd *cobra.Command, runCtx domain.RunContext, s *domain.RunSummary) {
	cmd.Println(render(headerStyle, "Sync summary"))
	cmd.Printf("  Discovered: %d\n", s.Discovered)
	cmd.Printf("  %s %d new, %d updated, %d unchanged\n",
		render(successStyle, "✓"), s.New, s.Updated, s.Unchanged)
	if s.Failed > 0 {
		cmd.Printf("  %s %d failed\n", render(errorStyle, "✗"), s.Failed)
	}
	cmd.Printf("  Report: %s\n", render(faintStyle, runCtx.ReportPath))
	if runCtx.KeepTemp {
		cmd.Printf("  Scratch kept: %s\n", render(warnStyle, runCtx.ScratchDir))
	}
}
