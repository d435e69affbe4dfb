package hashroute

import (
	"log/slog"
	"maps"
	"strings"

	"github.com/winterwell/wwutils/pkg/errs"
	"github.com/winterwell/wwutils/pkg/logging"
	"github.com/winterwell/wwutils/pkg/query"
)

// Router reads and modifies the route held by a History.
type Router struct {
	history History
	log     *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for push events.
func WithLogger(log *slog.Logger) Option {
	return func(r *Router) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRouter creates a Router over h.
func NewRouter(h History, opts ...Option) *Router {
	r := &Router{
		history: h,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = logging.Component(r.log, "hashroute")
	return r
}

// Current parses the history's current hash.
func (r *Router) Current() (Route, error) {
	return Parse(r.history.Read())
}

// Preview returns the hash Modify would push, without pushing it.
func (r *Router) Preview(path []string, params map[string]string) (string, error) {
	route, err := r.Current()
	if err != nil {
		return "", err
	}
	return merge(route, path, params).String(), nil
}

// merge applies a modification to route. A nil path keeps the current
// path; a non-nil one, even empty, replaces it. params are written over the
// current params key by key, so omitted keys survive and an empty value is
// stored as empty rather than deleted.
func merge(route Route, path []string, params map[string]string) Route {
	merged := maps.Clone(route.Params)
	if merged == nil {
		merged = make(map[string]string, len(params))
	}
	maps.Copy(merged, params)
	if path == nil {
		path = route.Path
	}
	return Route{Path: path, Params: merged}
}

// Modify merges path and params into the current route, pushes the result
// and emits a change notification. See Preview for the merge rules.
func (r *Router) Modify(path []string, params map[string]string) error {
	hash, err := r.Preview(path, params)
	if err != nil {
		return err
	}
	return r.push(hash)
}

// SetHash replaces the whole hash state with unescaped, which is encoded as
// a single component. unescaped must not start with "#".
func (r *Router) SetHash(unescaped string) error {
	if strings.HasPrefix(unescaped, "#") {
		return errs.New(errs.ErrInvalidArgument, "hashroute.SetHash", unescaped)
	}
	return r.push("#" + query.EncodeComponent(unescaped))
}

func (r *Router) push(hash string) error {
	oldURL := r.history.Location()
	if err := r.history.Push(hash); err != nil {
		return err
	}
	r.log.Debug("hash pushed", "old", oldURL, "hash", hash)
	r.history.NotifyChanged(oldURL)
	return nil
}
