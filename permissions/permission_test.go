package permissions_test

import (
	"agrirent/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)

	for _, endpoint := range data.Endpoints {
		if !endpoint.Skip {
			assert.NotEmpty(t, endpoint.Permissions, "%s %s has no roles", endpoint.Method, endpoint.Path)
		}
	}
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "public listing", path: "/v1/equipment", method: http.MethodGet, wantSkip: true},
		{name: "public listing with trailing slash", path: "/v1/equipment/", method: http.MethodGet, wantSkip: true},
		{name: "owner creates equipment", path: "/v1/equipment/", method: http.MethodPost, wantRoles: []string{"OWNER"}},
		{name: "farmer books", path: "/v1/bookings", method: http.MethodPost, wantRoles: []string{"FARMER"}},
		{name: "admin dashboard", path: "/v1/dashboard/admin", method: http.MethodGet, wantRoles: []string{"ADMIN"}},
		{name: "unknown endpoint", path: "/v1/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)

			if tt.wantRoles != nil {
				assert.Equal(t, tt.wantRoles, permission.Permissions)
			}
		})
	}
}
