package shirei

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.hasen.dev/generic"

	"go.hasen.dev/datepicker/internal/errors"
)

// Immediate mode file access: ReadFileContent can be called every frame. The
// content is cached until the file changes on disk, at which point the cache
// entry is dropped and a new frame is requested so the caller sees the new
// content.

var filesLock sync.RWMutex
var fileContent = make(map[string][]byte)

var filesWatcher *fsnotify.Watcher
var watchOnce sync.Once

func startWatcher() {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn(errors.WrapFail(err, "start file watcher"))
		return
	}
	filesWatcher = w
	go func() {
		for {
			select {
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op.Has(fsnotify.Write) || e.Op.Has(fsnotify.Create) ||
					e.Op.Has(fsnotify.Remove) || e.Op.Has(fsnotify.Rename) {
					forgetFile(e.Name)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn(errors.WrapFail(err, "watch files"))
			}
		}
	}()
}

func forgetFile(fpath string) {
	var found bool
	generic.WithWriteLock(&filesLock, func() {
		_, found = fileContent[fpath]
		delete(fileContent, fpath)
	})
	if found {
		log.Debugf("file changed: %s", fpath)
		RequestNextFrame()
	}
}

// ReadFileContent returns nil when the file can't be read.
func ReadFileContent(fpath string) []byte {
	fpath = filepath.Clean(fpath)

	filesLock.RLock()
	content, found := fileContent[fpath]
	filesLock.RUnlock()
	if found {
		return content
	}

	watchOnce.Do(startWatcher)

	content, err := os.ReadFile(fpath)
	if err != nil {
		log.Debugf("read %s: %s", fpath, err)
	}
	if filesWatcher != nil {
		if err := filesWatcher.Add(filepath.Dir(fpath)); err != nil {
			log.Warn(errors.WrapFailf(err, "watch %s", fpath))
		}
	}

	generic.WithWriteLock(&filesLock, func() {
		fileContent[fpath] = content
	})
	return content
}
