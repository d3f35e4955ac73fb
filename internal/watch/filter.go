package watch

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/abcmartin/scansorter/constants"
)

// normalizedName matches output this system already produced, which keeps a
// rename from re-triggering its own processing.
var normalizedName = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_`)

// Filter decides whether a raw change event denotes a newly-arrived candidate
// document directly inside the watched root.
type Filter struct {
	root string
}

func NewFilter(root string) (*Filter, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Filter{root: filepath.Clean(abs)}, nil
}

// Accept applies the rules in order: activity op on a plain document file,
// parent is exactly the watched root, not hidden, not already normalized.
func (f *Filter) Accept(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	if !constants.HasDocumentExt(ev.Name) {
		return false
	}
	info, err := os.Stat(ev.Name)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if filepath.Dir(filepath.Clean(ev.Name)) != f.root {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if normalizedName.MatchString(base) {
		return false
	}
	return true
}
