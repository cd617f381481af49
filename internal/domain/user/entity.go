package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidRole  = errors.New("invalid role")
)

// Role is a capability flag on the user record; admin access is carried
// here rather than by comparing against a well-known email address.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleMember, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }

type Email string

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || !strings.Contains(s, "@") {
		return "", ErrInvalidEmail
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// User's karma and totalDeals are adjusted only by the request
// lifecycle engine at completion; neither ever decreases.
type User struct {
	id           uuid.UUID
	email        Email
	name         string
	address      string
	phone        string
	profileImage string
	role         Role
	karma        int
	totalDeals   int
	createdAt    time.Time
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name, address, phone, profileImage string,
	role Role,
	karma, totalDeals int,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		address:      address,
		phone:        phone,
		profileImage: profileImage,
		role:         role,
		karma:        karma,
		totalDeals:   totalDeals,
		createdAt:    createdAt,
	}
}

func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Address() string      { return u.address }
func (u *User) Phone() string        { return u.phone }
func (u *User) ProfileImage() string { return u.profileImage }
func (u *User) Role() Role           { return u.role }
func (u *User) Karma() int           { return u.karma }
func (u *User) TotalDeals() int      { return u.totalDeals }
func (u *User) CreatedAt() time.Time { return u.createdAt }
