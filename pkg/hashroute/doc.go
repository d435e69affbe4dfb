// Package hashroute keeps application routing state in a URL fragment.
//
// A hash such as "#publisher/myblog?tab=stats&from=2024" is a Route with
// Path ["publisher", "myblog"] and Params {"tab": "stats", "from": "2024"}.
// Parse and Serialize convert between the two; they are pure and safe for
// concurrent use.
//
// A Router applies changes through a History: it reads the current hash,
// merges in new path and params, pushes the result and emits a change
// notification, since a programmatic push does not always produce one.
// MemoryHistory is an in-memory History for tests and non-browser hosts.
//
// This package does not match or dispatch routes.
package hashroute
