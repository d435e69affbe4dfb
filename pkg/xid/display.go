package xid

import "strings"

// Dewart returns the local id of s for display, minus any legacy wart.
//
// A wart is a two-character prefix "p_", "v_", "g_" or "c_". It is stripped
// unless the service is Twitter or Facebook, where such prefixes are part of
// real handles. s need not be a valid XId: without "@" the whole string is
// treated as the id and has no service. The result is for display only and
// must not be passed back to New.
func Dewart(s string) string {
	if s == "" {
		return ""
	}
	id, service := s, ""
	if i := strings.LastIndexByte(s, '@'); i >= 0 {
		id, service = s[:i], s[i+1:]
	}
	if !hasWart(id) {
		return id
	}
	if service == ServiceTwitter || service == ServiceFacebook {
		return id
	}
	return id[2:]
}

func hasWart(id string) bool {
	if len(id) < 3 || id[1] != '_' {
		return false
	}
	switch id[0] {
	case 'p', 'v', 'g', 'c':
		return true
	}
	return false
}

// PrettyName returns the first chunk of a dewarted XId, e.g. "daniel" from
// "daniel@winterwell.com@email". Twitter handles get a leading "@".
func PrettyName(s string) string {
	id := Dewart(s)
	if i := strings.IndexByte(id, '@'); i >= 0 {
		id = id[:i]
	}
	if service, err := Service(s); err == nil && service == ServiceTwitter {
		id = "@" + id
	}
	return id
}
