package auth

import "strings"

// Actor is the authenticated identity every policy decision runs
// against. It is resolved once at the HTTP boundary and passed down
// explicitly; nothing below the handlers re-derives roles.
type Actor struct {
	Email   string
	IsAdmin bool
}

// AdminSet is the configured HR admin allow-list, matched
// case-insensitively.
type AdminSet map[string]struct{}

func NewAdminSet(emails []string) AdminSet {
	set := make(AdminSet, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		set[e] = struct{}{}
	}
	return set
}

func (s AdminSet) Contains(email string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
