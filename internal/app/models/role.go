package models

import (
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/exceptions"
)

// Role is a closed set. Everything downstream of registration and authz
// switches over it exhaustively, so an unknown value must be rejected here
// and never leak further in.
type Role string

const (
	RolePatient       Role = constvars.RoleTypePatient
	RoleDoctor        Role = constvars.RoleTypeDoctor
	RoleHospitalAdmin Role = constvars.RoleTypeHospitalAdmin
	RoleSuperAdmin    Role = constvars.RoleTypeSuperAdmin
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RolePatient, RoleDoctor, RoleHospitalAdmin, RoleSuperAdmin:
		return Role(raw), nil
	}
	return "", exceptions.ErrUnknownRole(nil)
}

func (r Role) String() string {
	return string(r)
}

func AllRoles() []Role {
	return []Role{RolePatient, RoleDoctor, RoleHospitalAdmin, RoleSuperAdmin}
}
