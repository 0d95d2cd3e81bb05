package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ukaji3/chartnote-go/internal/logger"
	"github.com/ukaji3/chartnote-go/pkg/chartnote"
	"github.com/ukaji3/chartnote-go/pkg/chartnote/notes"
)

func scanOptions(includeEmpty bool) chartnote.Options {
	opts := chartnote.DefaultOptions()
	opts.Languages = cfg.Languages
	opts.IncludeEmpty = includeEmpty
	return opts
}

func vaultDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.VaultDir
}

func newScanCmd() *cobra.Command {
	var includeEmpty bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Analyze every chart code block in a notes vault",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := chartnote.ScanVault(vaultDir(args), scanOptions(includeEmpty))
			if err != nil {
				return err
			}
			return writeResult(cmd, report)
		},
	}
	cmd.Flags().BoolVar(&includeEmpty, "include-empty", false, "Include notes without chart blocks")
	return cmd
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-analyze notes as they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			dir := vaultDir(args)
			w, err := notes.NewWatcher(logger.Component("watch"), dir, cfg.WatchDebounce)
			if err != nil {
				return err
			}
			defer w.Close()
			log.Info("Watching vault", logger.Fields{"dir": dir, "debounce": cfg.WatchDebounce.String()})

			opts := scanOptions(false)
			for {
				select {
				case <-ctx.Done():
					log.Info("Watcher stopped")
					return nil
				case ev, ok := <-w.Events():
					if !ok {
						return nil
					}
					if ev.Removed {
						log.Info("Note removed", logger.Fields{"path": ev.Path})
						continue
					}
					nc, err := chartnote.ScanNote(ev.Path, opts)
					if err != nil {
						log.Warn("Unable to analyze note", logger.Fields{"path": ev.Path, "error": err.Error()})
						continue
					}
					log.Debug("Note analyzed", logger.Fields{"path": ev.Path, "charts": len(nc.Blocks)})
					if len(nc.Blocks) == 0 {
						continue
					}
					if err := writeResult(cmd, nc); err != nil {
						return err
					}
				}
			}
		},
	}
}
