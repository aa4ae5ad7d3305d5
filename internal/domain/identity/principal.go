package identity

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Principal is the per-request identity derived from a verified token.
// It lives for one request and is never persisted.
type Principal struct {
	Subject string
	Role    string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccess is the single ownership predicate for the whole service.
// Every endpoint that touches an asset by id must go through it, after
// the record is fetched and before any file path is resolved.
func (p Principal) CanAccess(owner string) bool {
	return p.Role == RoleAdmin || p.Subject == owner
}
