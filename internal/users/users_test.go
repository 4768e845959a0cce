package users

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seeded(t *testing.T) *Manager {
	t.Helper()

	m := &Manager{}
	assert.NoError(t, m.Add("Alice", RoleAdmin))
	assert.NoError(t, m.Add("Bob", RoleModerator))
	assert.NoError(t, m.Add("Charlie", RoleUser))

	return m
}

func Test_AddShouldRejectDuplicateNames(t *testing.T) {
	m := seeded(t)

	err := m.Add("Alice", RoleUser)
	assert.ErrorIs(t, err, ErrUserExists)
	assert.Equal(t, 3, m.Size())
}

func Test_CountsShouldTrackRoles(t *testing.T) {
	m := seeded(t)

	admins, mods, regulars := m.Counts()
	assert.Equal(t, 1, admins)
	assert.Equal(t, 1, mods)
	assert.Equal(t, 1, regulars)
}

func Test_RemoveShouldRefuseLastAdmin(t *testing.T) {
	m := seeded(t)

	err := m.Remove("Alice")
	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.Equal(t, 3, m.Size())

	assert.NoError(t, m.Add("Dana", RoleAdmin))
	assert.NoError(t, m.Remove("Alice"))

	admins, _, _ := m.Counts()
	assert.Equal(t, 1, admins)
}

func Test_RemoveShouldFailForUnknownUser(t *testing.T) {
	m := seeded(t)

	err := m.Remove("Nobody")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func Test_RemoveShouldUpdateCounters(t *testing.T) {
	m := seeded(t)

	assert.NoError(t, m.Remove("Charlie"))

	_, _, regulars := m.Counts()
	assert.Equal(t, 0, regulars)
	assert.Equal(t, 2, m.Size())
}

func Test_ChangeRoleShouldPromoteAndKeepCountersConsistent(t *testing.T) {
	m := seeded(t)

	assert.NoError(t, m.ChangeRole("Bob", RoleAdmin))

	admins, mods, _ := m.Counts()
	assert.Equal(t, 2, admins)
	assert.Equal(t, 0, mods)
}

func Test_ChangeRoleShouldRefuseSameRole(t *testing.T) {
	m := seeded(t)

	err := m.ChangeRole("Bob", RoleModerator)
	assert.ErrorIs(t, err, ErrSameRole)
}

func Test_ChangeRoleShouldRefuseDemotingLastAdmin(t *testing.T) {
	m := seeded(t)

	err := m.ChangeRole("Alice", RoleUser)
	assert.ErrorIs(t, err, ErrLastAdmin)

	role, ok := m.byName["Alice"]
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)
}

func Test_ChangeRoleShouldFailForUnknownUser(t *testing.T) {
	m := seeded(t)

	err := m.ChangeRole("Nobody", RoleAdmin)
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func Test_AllShouldReturnUsersOrderedByName(t *testing.T) {
	m := seeded(t)

	all := m.All()
	assert.Len(t, all, 3)
	assert.Equal(t, "Alice", all[0].Name)
	assert.Equal(t, "Bob", all[1].Name)
	assert.Equal(t, "Charlie", all[2].Name)
}

func Test_RoleShouldRoundTripThroughJSON(t *testing.T) {
	testcases := []struct {
		role Role
		raw  string
	}{
		{RoleAdmin, `"ADMIN"`},
		{RoleModerator, `"MOD"`},
		{RoleUser, `"USER"`},
	}

	for _, tc := range testcases {
		raw, err := json.Marshal(tc.role)
		assert.NoError(t, err)
		assert.Equal(t, tc.raw, string(raw))

		var got Role
		assert.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, tc.role, got)
	}
}

func Test_UnmarshalShouldRejectUnknownRoleName(t *testing.T) {
	var got Role
	err := json.Unmarshal([]byte(`"guest"`), &got)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func Test_SeedDocumentShouldPopulateRegistry(t *testing.T) {
	const doc = `[
		{"name": "Dana", "role": "ADMIN"},
		{"name": "Eve", "role": "mod"},
		{"name": "Frank", "role": "user"}
	]`

	var seed []User
	assert.NoError(t, json.Unmarshal([]byte(doc), &seed))

	m := &Manager{}
	for _, u := range seed {
		assert.NoError(t, m.Add(u.Name, u.Role))
	}

	admins, mods, regulars := m.Counts()
	assert.Equal(t, 1, admins)
	assert.Equal(t, 1, mods)
	assert.Equal(t, 1, regulars)
	assert.Equal(t, 3, m.Size())
}

func Test_ParseRoleShouldMapNames(t *testing.T) {
	testcases := []struct {
		inp string
		exp Role
	}{
		{"admin", RoleAdmin},
		{"MOD", RoleModerator},
		{"moderator", RoleModerator},
		{"user", RoleUser},
	}

	for _, tc := range testcases {
		role, err := ParseRole(tc.inp)
		assert.NoError(t, err)
		assert.Equal(t, tc.exp, role)
	}

	_, err := ParseRole("guest")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
