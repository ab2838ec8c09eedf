package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/tonobo/floodsnake/api"
)

// Recorder appends every request it sees to a per-game access log, one JSON
// document per line. Lines can be replayed with `floodsnake move`.
type Recorder struct {
	Dir string

	mu sync.Mutex
}

func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating request log dir %s", dir)
	}
	return &Recorder{Dir: dir}, nil
}

// Path is the access log for the game req belongs to.
func (r *Recorder) Path(req *api.Request) string {
	return filepath.Join(r.Dir, fmt.Sprintf("access-snake-%s-%s.log",
		sanitize(req.You.Name),
		sanitize(req.Game.ID)))
}

func (r *Recorder) Record(req *api.Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "encoding request")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.OpenFile(r.Path(req), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "opening request log")
	}
	if _, err := fmt.Fprintf(f, "%s\n", body); err != nil {
		f.Close()
		return errors.Wrap(err, "writing request log")
	}
	return f.Close()
}

func sanitize(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ':
			return '_'
		}
		return r
	}, s)
}
