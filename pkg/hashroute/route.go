package hashroute

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/winterwell/wwutils/pkg/query"
	"github.com/winterwell/wwutils/pkg/truthy"
)

// Route is the application state held in a location hash: "#a/b?k=v" is
// Path ["a", "b"] and Params {"k": "v"}. Param values are always strings.
type Route struct {
	Path   []string          `json:"path" yaml:"path"`
	Params map[string]string `json:"params" yaml:"params"`
}

// String serializes the route, starting with "#".
func (r Route) String() string {
	return Serialize(r.Path, r.Params)
}

// Equal reports whether two routes hold the same path and params. Nil and
// empty collections are equal.
func (r Route) Equal(other Route) bool {
	return slices.Equal(r.Path, other.Path) && maps.Equal(r.Params, other.Params)
}

// Parse reads a location hash. One leading "#" is optional. Everything
// before the first "?" is the path, split on "/" with each segment
// percent-decoded; an empty path is an empty slice. A segment that does not
// decode, such as "50%off", is kept as it is. Everything after the "?" is
// decoded as a query string.
//
// Malformed percent-escapes in the params are returned as errs.ErrDecode.
func Parse(hash string) (Route, error) {
	hash = strings.TrimPrefix(hash, "#")
	page, rawQuery, hasQuery := strings.Cut(hash, "?")

	route := Route{Path: []string{}, Params: map[string]string{}}
	if page != "" {
		for _, segment := range strings.Split(page, "/") {
			if decoded, err := query.DecodeComponent(segment); err == nil {
				segment = decoded
			}
			route.Path = append(route.Path, segment)
		}
	}
	if hasQuery {
		params, err := query.Decode(rawQuery)
		if err != nil {
			return Route{}, fmt.Errorf("params: %w", err)
		}
		route.Params = params
	}
	return route, nil
}

// Serialize builds a location hash, starting with "#", from a path and
// params. The joined path is encoded as one component, which keeps the "/"
// separators. The "?" part is left off unless params is yessy, i.e. has at
// least one non-empty key.
func Serialize(path []string, params map[string]string) string {
	var b strings.Builder
	b.WriteByte('#')
	b.WriteString(query.EncodeComponent(strings.Join(path, "/")))
	if truthy.Yessy(params) {
		b.WriteByte('?')
		b.WriteString(query.Encode(params))
	}
	return b.String()
}
