package codegen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/purush7/graphql-engine/internal/metadata"
)

// WatchDebounce is how long Watch waits for metadata writes to settle.
var WatchDebounce = 200 * time.Millisecond

// Watch runs codegen once and then again after every change to the actions
// metadata files, until ctx is done. Failed runs are logged, not returned.
func (g *Generator) Watch(ctx context.Context, names []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := g.Config.MetadataPath(g.ProjectDir)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	g.Log.Info().Str("dir", dir).Msg("watching metadata")

	run := func() {
		if _, err := g.Run(ctx, names); err != nil {
			g.Log.Error().Err(err).Msg("codegen failed")
		}
	}
	run()

	timer := time.NewTimer(WatchDebounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched(ev) {
				continue
			}
			g.Log.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("metadata changed")
			timer.Reset(WatchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			g.Log.Error().Err(err).Msg("watch error")
		case <-timer.C:
			run()
		}
	}
}

func watched(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Base(ev.Name) {
	case metadata.ActionsFile, metadata.SDLFile:
		return true
	}
	return false
}
