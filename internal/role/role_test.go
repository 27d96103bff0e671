package role

import (
	"testing"

	"volunteerHub/internal/models"

	"github.com/stretchr/testify/assert"
)

func user(id int, name string) *models.User {
	return &models.User{ID: 1, Role: models.Role{ID: id, Name: name}}
}

func TestOf(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		user *models.User
		want Role
	}{
		{name: "No user", user: nil, want: None},
		{name: "Volunteer by id", user: user(1, ""), want: Volunteer},
		{name: "Manager by id", user: user(2, "ROLE_VOLUNTEER"), want: Manager},
		{name: "Admin by name", user: user(0, "ROLE_ADMIN"), want: Admin},
		{name: "Unknown id falls back to name", user: user(9, "ROLE_MANAGER"), want: Manager},
		{name: "Unknown role", user: user(0, "ROLE_GUEST"), want: None},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Of(tc.user))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Capabilities{Role: None}, Resolve(nil))
	assert.Equal(t, Capabilities{Role: Volunteer, IsVolunteer: true}, Resolve(user(1, "")))
	assert.Equal(t, Capabilities{Role: Manager, IsManager: true}, Resolve(user(2, "")))
	assert.Equal(t, Capabilities{Role: Admin, IsAdmin: true}, Resolve(user(3, "")))
}

func TestAcceptsIsExact(t *testing.T) {
	t.Parallel()

	admin := Resolve(user(3, ""))

	assert.True(t, admin.Accepts(Admin))
	assert.False(t, admin.Accepts(Manager))
	assert.False(t, Resolve(nil).Accepts(None))
}

func TestAtLeast(t *testing.T) {
	t.Parallel()

	admin := Resolve(user(3, ""))
	manager := Resolve(user(2, ""))
	volunteer := Resolve(user(1, ""))

	assert.True(t, admin.AtLeast(Manager))
	assert.True(t, manager.AtLeast(Manager))
	assert.False(t, volunteer.AtLeast(Manager))
	assert.False(t, Resolve(nil).AtLeast(None))

	assert.True(t, admin.CanManage())
	assert.False(t, volunteer.CanManage())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "admin", Admin.String())
	assert.Equal(t, "none", Role(7).String())
}
