package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"aisle/floorplan"
)

// debounceDelay batches the event bursts editors produce on save.
const debounceDelay = 250 * time.Millisecond

// Watch reloads the plan whenever its file changes on disk, until the
// context is cancelled. The parent directory is watched rather than
// the file itself, so editors that save via rename keep working.
func (s *Server) Watch(ctx context.Context) error {
	if s.planFile == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(s.planFile)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	s.log.Info("watching plan file", zap.String("file", s.planFile))

	target := filepath.Clean(s.planFile)
	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("watch error", zap.Error(err))

		case <-debounce.C:
			s.reloadPlan()
		}
	}
}

// reloadPlan reads the plan file and swaps it in. A broken or invalid
// file is logged and the previous plan stays live.
func (s *Server) reloadPlan() {
	plan, err := floorplan.Load(s.planFile)
	if err != nil {
		s.log.Error("reload plan", zap.String("file", s.planFile), zap.Error(err))
		return
	}
	s.swapPlan(plan)
	s.hub.broadcast("plan_updated")
}
