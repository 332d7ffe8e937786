package service

import "github.com/Nattie-Nkosi/certsim/internal/model"

// Principal is the authenticated identity making a request, resolved by the
// auth middleware from a bearer token.
type Principal struct {
	ID    uint
	Email string
	Role  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// ClientMeta carries request metadata captured once at attempt creation.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}
