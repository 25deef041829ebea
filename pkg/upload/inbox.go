package upload

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/gitcha"
)

// Document is a candidate file sitting in the inbox.
type Document struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Inbox watches a local directory for case documents to upload. The
// initial scan walks the tree with gitcha; afterwards fsnotify keeps the
// listing current without rescanning.
type Inbox struct {
	mu        sync.Mutex
	Directory string
	documents map[string]Document
	watcher   *fsnotify.Watcher
}

func NewInbox(dir string) (*Inbox, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, err
	}

	finfo, err := os.Stat(expanded)
	if err != nil || !finfo.IsDir() {
		if err := os.MkdirAll(expanded, 0700); err != nil {
			return nil, fmt.Errorf("error creating %s: %w", dir, err)
		}
	}

	in := Inbox{
		Directory: expanded,
		documents: map[string]Document{},
	}

	if err := in.scan(); err != nil {
		return nil, err
	}
	if err := in.startWatcher(); err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}
	return &in, nil
}

func (in *Inbox) scan() error {
	patterns := make([]string, len(AcceptedExtensions))
	for i, ext := range AcceptedExtensions {
		patterns[i] = "*" + ext
	}

	var ignore []string
	ch, err := gitcha.FindFilesExcept(in.Directory, patterns, ignore)
	if err != nil {
		return err
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	for res := range ch {
		in.documents[res.Path] = Document{Path: res.Path, Size: res.Info.Size(), ModTime: res.Info.ModTime()}
	}
	return nil
}

func (in *Inbox) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(in.Directory); err != nil {
		return fmt.Errorf("unable to watch %s: %w", in.Directory, err)
	}
	in.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				in.reconcile(event)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

func (in *Inbox) reconcile(event fsnotify.Event) {
	if !Accepted(event.Name) {
		return
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		delete(in.documents, event.Name)
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
		finfo, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		in.documents[event.Name] = Document{Path: event.Name, Size: finfo.Size(), ModTime: finfo.ModTime()}
	}
}

// Documents lists the inbox alphabetically.
func (in *Inbox) Documents() []Document {
	in.mu.Lock()
	defer in.mu.Unlock()

	docs := make([]Document, 0, len(in.documents))
	for _, d := range in.documents {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs
}

// Forget drops an uploaded document from the listing without deleting the
// file.
func (in *Inbox) Forget(path string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	delete(in.documents, path)
}

func (in *Inbox) Close() error {
	if in.watcher == nil {
		return nil
	}
	return in.watcher.Close()
}
