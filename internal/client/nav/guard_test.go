package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuwf/chainmarket/internal/client/session"
)

func TestDecide_AuthRequiredRedirectsToLogin(t *testing.T) {
	r := NewRouter()

	d := r.Decide("/checkout", session.Snapshot{Connected: false, Role: session.RoleUser})

	assert.False(t, d.Proceed)
	assert.Equal(t, "/login", d.Redirect)
	assert.Equal(t, "/checkout", d.ReturnTo, "sign-in must be able to resume the requested path")
	assert.Equal(t, ReasonAuthRequired, d.Reason)
}

func TestDecide_RoleMismatchRedirectsToRoleHome(t *testing.T) {
	r := NewRouter()

	d := r.Decide("/merchant/shop", session.Snapshot{Connected: true, Role: session.RoleUser})

	assert.False(t, d.Proceed)
	assert.Equal(t, "/", d.Redirect, "plain users land on the storefront home")
	assert.Equal(t, ReasonPermissionDenied, d.Reason)
}

func TestDecide_MatrixOfRequirementsAndStates(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		snap    session.Snapshot
		proceed bool
		want    string
	}{
		{name: "public view, disconnected", path: "/", snap: session.Snapshot{Role: session.RoleUser}, proceed: true},
		{name: "public view, connected", path: "/", snap: session.Snapshot{Connected: true, Role: session.RoleAdmin}, proceed: true},
		{name: "auth view, connected user", path: "/account", snap: session.Snapshot{Connected: true, Role: session.RoleUser}, proceed: true},
		{name: "auth view, disconnected", path: "/rewards", snap: session.Snapshot{Role: session.RoleUser}, proceed: false, want: "/login"},
		{name: "merchant view, merchant", path: "/merchant/orders", snap: session.Snapshot{Connected: true, Role: session.RoleMerchant}, proceed: true},
		{name: "merchant view, admin", path: "/merchant/orders", snap: session.Snapshot{Connected: true, Role: session.RoleAdmin}, proceed: false, want: "/admin"},
		{name: "admin view, merchant", path: "/admin/users", snap: session.Snapshot{Connected: true, Role: session.RoleMerchant}, proceed: false, want: "/merchant"},
		{name: "admin view, admin", path: "/admin/users", snap: session.Snapshot{Connected: true, Role: session.RoleAdmin}, proceed: true},
		{name: "merchant view, disconnected merchant", path: "/merchant", snap: session.Snapshot{Connected: false, Role: session.RoleMerchant}, proceed: false, want: "/login"},
	}

	r := NewRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := r.Decide(tt.path, tt.snap)
			assert.Equal(t, tt.proceed, d.Proceed)
			if !tt.proceed {
				assert.Equal(t, tt.want, d.Redirect)
			}
		})
	}
}

func TestDecide_UnknownPathProceeds(t *testing.T) {
	r := NewRouter()
	d := r.Decide("/no/such/view", session.Snapshot{})
	assert.True(t, d.Proceed)
}

func TestDecide_IsPureAndUncached(t *testing.T) {
	r := NewRouter()

	snap := session.Snapshot{Connected: false, Role: session.RoleUser}
	first := r.Decide("/checkout", snap)
	require.False(t, first.Proceed)

	// same router, changed session: the decision must follow the snapshot
	snap = session.Snapshot{Connected: true, Role: session.RoleUser}
	second := r.Decide("/checkout", snap)
	assert.True(t, second.Proceed)
}

func TestHomeFor(t *testing.T) {
	assert.Equal(t, "/merchant", HomeFor(session.RoleMerchant))
	assert.Equal(t, "/admin", HomeFor(session.RoleAdmin))
	assert.Equal(t, "/", HomeFor(session.RoleUser))
	assert.Equal(t, "/", HomeFor(session.Role("unknown")))
}
