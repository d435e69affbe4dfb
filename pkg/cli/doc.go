// Package cli provides the command-line interface for wwutils.
//
// Commands:
//   - query: decode, encode and read URL query strings (decode, encode, vars)
//   - hash: parse, build, modify and set hash-fragment routes
//   - xid: split, join and format "id@service" identifiers
//   - html: attr, encode, decode, plain, clean and sanitise
//   - text: title, ellipsize, email, host, endswith and pick
//   - uid: generate and check random UUIDs
//   - yessy: classify a JSON value
//   - config: show effective configuration and search paths
//   - version: show wwutils version
//
// Every command honours --output (text, json or yaml) and --select, a
// JSONPath applied to the structured result.
//
// Usage:
//
//	wwutils query decode 'a=1&b=x%20y'
//	wwutils hash parse '#publisher/myblog?tab=stats'
//	wwutils hash modify --current '#foo?a=1' -p b=2
//	wwutils xid pretty winterstein@twitter
//	wwutils html clean --tag b '<b>hi</b> <i>there</i>'
//	wwutils -o json hash parse '#a/b?x=1' --select '$.path[0]'
package cli
