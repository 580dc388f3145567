package gateway

import "strings"

// ParseCredentialList splits a comma-separated credential string into its
// member tokens. Surrounding whitespace is trimmed and blank entries dropped,
// so `"  a@b ,  ,c@d"` parses to ["a@b", "c@d"].
func ParseCredentialList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if token := strings.TrimSpace(part); token != "" {
			out = append(out, token)
		}
	}
	return out
}

// CredentialStore holds the static bearer-credential sets loaded at startup.
// It is read-only after construction and safe for concurrent use without
// locking. Raw tokens are never exposed; diagnostics are count-based only.
type CredentialStore struct {
	readOnly  map[string]struct{}
	readWrite map[string]struct{}
}

// NewCredentialStore builds a store from the two configured credential lists.
// Entries are trimmed and blanks dropped, matching ParseCredentialList.
func NewCredentialStore(readOnly, readWrite []string) *CredentialStore {
	s := &CredentialStore{
		readOnly:  make(map[string]struct{}),
		readWrite: make(map[string]struct{}),
	}
	for _, token := range readOnly {
		if token = strings.TrimSpace(token); token != "" {
			s.readOnly[token] = struct{}{}
		}
	}
	for _, token := range readWrite {
		if token = strings.TrimSpace(token); token != "" {
			s.readWrite[token] = struct{}{}
		}
	}
	return s
}

// Empty reports whether no credentials are configured at all. An empty store
// selects the open-access fallback: every request resolves to RoleReadWrite.
func (s *CredentialStore) Empty() bool {
	return len(s.readOnly) == 0 && len(s.readWrite) == 0
}

// Classify resolves the role for a bearer token. Read-write membership is
// checked before read-only membership, so a token configured in both sets
// resolves to the higher-capability role.
func (s *CredentialStore) Classify(token string) (Role, bool) {
	if token == "" {
		return 0, false
	}
	if _, ok := s.readWrite[token]; ok {
		return RoleReadWrite, true
	}
	if _, ok := s.readOnly[token]; ok {
		return RoleReadOnly, true
	}
	return 0, false
}

// Counts returns the configured set sizes for startup diagnostics.
func (s *CredentialStore) Counts() (readOnly, readWrite int) {
	return len(s.readOnly), len(s.readWrite)
}
