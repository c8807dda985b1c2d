package server

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rustpress/adminterm/internal/vfs"
)

// watchFixture reloads the tree template when the fixture file changes.
// New sessions pick up the reloaded tree; running sessions are untouched.
// The parent directory is watched because editors typically replace the
// file on save, which drops a watch on the file itself.
func (s *Server) watchFixture(path string) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				tree, err := vfs.LoadFixtureFile(abs)
				if err != nil {
					log.Printf("fixture reload failed, keeping previous tree: %v", err)
					continue
				}
				s.setTree(tree)
				log.Printf("fixture reloaded from %s", abs)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("fixture watcher error: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}
