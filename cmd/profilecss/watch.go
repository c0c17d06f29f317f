package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/yacobolo/profilecss"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// rebuildDelay collapses the burst of events editors produce on save.
const rebuildDelay = 150 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the stylesheet whenever a source changes",
	Long: `Run a build, then watch the source directories and rebuild on every
change to a .css file until interrupted. Failed builds are reported and
watching continues.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	addBuildFlags(watchCmd.Flags())
}

func runWatch(cmd *cobra.Command, _ []string) (err error) {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, syncLogger(log))
	}()

	config := buildConfig()

	dirs, err := watchDirs(config)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		err = multierr.Append(err, watcher.Close())
	}()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		log.Debug("Watching directory", zap.String("dir", dir))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func() {
		if _, err := buildOnce(config, log); err != nil {
			log.Error("Build failed", zap.Error(err))
		}
	}

	rebuild()
	log.Info("Watching for changes", zap.Int("directories", len(dirs)))

	return watchLoop(ctx, watcher, profilecss.OutputFile(config), rebuild, log)
}

// watchLoop calls rebuild once per burst of source events until ctx is done.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, output string, rebuild func(), log *zap.Logger) error {
	timer := time.NewTimer(rebuildDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isSourceEvent(event, output) {
				continue
			}
			log.Debug("Source changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(rebuildDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))

		case <-timer.C:
			rebuild()
		}
	}
}

// isSourceEvent reports whether event should trigger a rebuild. The published
// file is ignored so that writing it does not start another build.
func isSourceEvent(event fsnotify.Event, output string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	if !strings.EqualFold(filepath.Ext(event.Name), ".css") {
		return false
	}
	return filepath.Clean(event.Name) != filepath.Clean(output)
}

// watchDirs lists the directories holding the configured sources: the parent of
// every literal path and resolved match, the static base of every glob, and for
// globs that reach into subdirectories every directory below that base. Only
// directories present when watching starts are covered.
func watchDirs(config profilecss.Config) ([]string, error) {
	root := config.Root
	if root == "" {
		root = "."
	}
	fsys := os.DirFS(root)

	files, err := profilecss.ResolveSources(fsys, config.Sources, config.Excludes)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		full := filepath.Join(root, filepath.FromSlash(dir))
		if !seen[full] {
			seen[full] = true
			dirs = append(dirs, full)
		}
	}

	for _, f := range files {
		add(path.Dir(f))
	}
	for _, pattern := range config.Sources {
		base, glob := doublestar.SplitPattern(path.Clean(filepath.ToSlash(pattern)))
		add(base)
		if !strings.Contains(glob, "/") && !strings.Contains(glob, "**") {
			continue
		}
		err := doublestar.GlobWalk(fsys, path.Join(base, "**"), func(p string, d fs.DirEntry) error {
			if d.IsDir() {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", base, err)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}
