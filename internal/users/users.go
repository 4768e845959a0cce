// Package users keeps a registry of named users with role-based access
// levels and enforces that the system never loses its last admin.
package users

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/zeebo/errs"
)

// Role is a user's access level.
type Role int

const (
	RoleUser Role = iota
	RoleModerator
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleModerator:
		return "MOD"
	case RoleUser:
		return "USER"
	default:
		return "UNKNOWN"
	}
}

// ParseRole maps a role name to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin", "ADMIN":
		return RoleAdmin, nil
	case "mod", "MOD", "moderator":
		return RoleModerator, nil
	case "user", "USER":
		return RoleUser, nil
	default:
		return 0, ErrUnknownRole
	}
}

// MarshalJSON encodes a role by its name.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes any spelling ParseRole accepts.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return Error.Wrap(err)
	}

	role, err := ParseRole(s)
	if err != nil {
		return err
	}

	*r = role
	return nil
}

// User pairs a name with its role.
type User struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

var (
	// Error is the class wrapping every error this package returns.
	Error = errs.Class("users")

	ErrUserExists  = Error.New("user already exists")
	ErrUnknownUser = Error.New("user does not exist")
	ErrSameRole    = Error.New("user already has that role")
	ErrLastAdmin   = Error.New("cannot drop the last admin")
	ErrUnknownRole = Error.New("unknown role")
)

// Manager is a user registry keyed by name with per-role counters. The
// zero value is ready to use. Not safe for concurrent use.
type Manager struct {
	once   sync.Once
	byName map[string]Role
	counts map[Role]int
}

func (m *Manager) init() {
	m.once.Do(func() {
		m.byName = map[string]Role{}
		m.counts = map[Role]int{}
	})
}

// Add registers a new user under name. Names are unique.
func (m *Manager) Add(name string, role Role) error {
	m.init()

	if _, ok := m.byName[name]; ok {
		return ErrUserExists
	}

	m.byName[name] = role
	m.counts[role]++

	return nil
}

// Remove deletes a user. Removing the last admin is refused so the system
// always keeps at least one.
func (m *Manager) Remove(name string) error {
	m.init()

	role, ok := m.byName[name]
	if !ok {
		return ErrUnknownUser
	}

	if role == RoleAdmin && m.counts[RoleAdmin] <= 1 {
		return ErrLastAdmin
	}

	delete(m.byName, name)
	m.counts[role]--

	return nil
}

// ChangeRole moves a user to a new role, keeping the counters consistent.
// Demoting the last admin is refused, as is a no-op change.
func (m *Manager) ChangeRole(name string, role Role) error {
	m.init()

	current, ok := m.byName[name]
	if !ok {
		return ErrUnknownUser
	}

	if current == role {
		return ErrSameRole
	}

	if current == RoleAdmin && m.counts[RoleAdmin] <= 1 {
		return ErrLastAdmin
	}

	m.byName[name] = role
	m.counts[current]--
	m.counts[role]++

	return nil
}

// All returns every user ordered by name.
func (m *Manager) All() []User {
	m.init()

	all := make([]User, 0, len(m.byName))
	for name, role := range m.byName {
		all = append(all, User{Name: name, Role: role})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	return all
}

// Counts reports how many users hold each role.
func (m *Manager) Counts() (admins, mods, users int) {
	m.init()
	return m.counts[RoleAdmin], m.counts[RoleModerator], m.counts[RoleUser]
}

// Size reports the total number of registered users.
func (m *Manager) Size() int {
	m.init()
	return len(m.byName)
}
