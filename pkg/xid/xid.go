// Package xid parses and builds XIds, compact "id@service" identifiers.
//
// The service is whatever follows the last "@", so the local id may itself
// contain "@" (e.g. "daniel@winterwell.com@email"). The flip side is that a
// service containing "@" does not survive a round trip through New and ID.
package xid

import (
	"fmt"
	"strings"

	"github.com/winterwell/wwutils/pkg/errs"
)

// Services whose ids legitimately start with a wart-like prefix.
const (
	ServiceTwitter  = "twitter"
	ServiceFacebook = "facebook"
)

// XID is a parsed XId.
type XID struct {
	ID      string `json:"id" yaml:"id"`
	Service string `json:"service" yaml:"service"`
}

// String returns the "id@service" form.
func (x XID) String() string {
	return New(x.ID, x.Service)
}

// Parse splits s at its last "@".
func Parse(s string) (XID, error) {
	if s == "" {
		return XID{}, errs.New(errs.ErrEmptyInput, "xid.Parse", s)
	}
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return XID{}, errs.New(errs.ErrInvalidFormat, "xid.Parse", s)
	}
	return XID{ID: s[:i], Service: s[i+1:]}, nil
}

// ID returns the local part of an XId, e.g. "winterstein" from
// "winterstein@twitter".
func ID(s string) (string, error) {
	if s == "" {
		return "", errs.New(errs.ErrEmptyInput, "xid.ID", s)
	}
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return "", errs.New(errs.ErrInvalidFormat, "xid.ID", s)
	}
	return s[:i], nil
}

// Service returns the service part of an XId, e.g. "twitter".
func Service(s string) (string, error) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return "", errs.New(errs.ErrInvalidFormat, "xid.Service", s)
	}
	return s[i+1:], nil
}

// New joins a local id and a service.
func New(id, service string) string {
	return id + "@" + service
}

// FromValues is New for dynamically typed input such as decoded JSON.
// Both arguments must be strings.
func FromValues(id, service any) (string, error) {
	i, ok := id.(string)
	if !ok {
		return "", errs.New(errs.ErrInvalidArgument, "xid.FromValues", fmt.Sprintf("id %T", id))
	}
	s, ok := service.(string)
	if !ok {
		return "", errs.New(errs.ErrInvalidArgument, "xid.FromValues", fmt.Sprintf("service %T", service))
	}
	return New(i, s), nil
}
