package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuwf/chainmarket/internal/client/session"
)

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestOpen_AnonymousRedirectedToLogin(t *testing.T) {
	lines := captureOutput(t)

	a := newTestApp(&fakeMarket{})

	require.NoError(t, a.Open(context.Background(), "/checkout"))

	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "/login")
	assert.Contains(t, (*lines)[0], "/checkout")
}

func TestOpen_SignedInProceeds(t *testing.T) {
	lines := captureOutput(t)

	a := newTestApp(&fakeMarket{})
	a.sess.SetConnected(true)

	require.NoError(t, a.Open(context.Background(), "/checkout"))

	require.Len(t, *lines, 1)
	assert.Equal(t, "-> /checkout", (*lines)[0])
}

func TestOpen_WrongRoleRedirectedHome(t *testing.T) {
	lines := captureOutput(t)

	a := newTestApp(&fakeMarket{})
	ctx := context.Background()
	require.NoError(t, a.sess.SetRole(ctx, session.RoleUser))
	a.sess.SetConnected(true)

	require.NoError(t, a.Open(ctx, "/admin/users"))

	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "-> /")
	assert.Contains(t, (*lines)[0], "permission denied")
}
