package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/testutil/apistub"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "ana@example.com"
	testPassword = "s3cret-pass"
)

// setup points the CLI at a fresh stub and a private settings file.
func setup(t *testing.T) *apistub.Server {
	t.Helper()
	stub := apistub.New(t)
	stub.AddUser(model.User{Username: "ana", Email: testEmail, FirstName: "Ana", LastName: "Lopez"}, testPassword)

	t.Setenv("SHOPLIST_API_URL", stub.URL)
	t.Setenv("SHOPLIST_STORE", "file")
	t.Setenv("SHOPLIST_STORE_PATH", filepath.Join(t.TempDir(), "settings.toml"))
	t.Setenv("SHOPLIST_RETRY_MAX", "0")
	return stub
}

// run executes one CLI invocation the way Execute does.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rt := &runtime{}
	defer rt.close()

	var out, errOut bytes.Buffer
	root := newRootCommand(rt)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func login(t *testing.T) {
	t.Helper()
	_, err := run(t, "", "login", testEmail, "--password", testPassword)
	require.NoError(t, err)
}

func TestCheckUser(t *testing.T) {
	setup(t)

	out, err := run(t, "", "check-user", testEmail)
	require.NoError(t, err)
	assert.Contains(t, out, "is registered")

	out, err = run(t, "", "check-user", "nobody@example.com", "-o", "json")
	require.NoError(t, err)
	var view checkUserView
	require.NoError(t, sonic.UnmarshalString(out, &view))
	assert.Equal(t, string(model.UserNotRegistered), view.Status)
	assert.Equal(t, "nobody@example.com", view.Email)
}

func TestCheckUserRejectsBadEmail(t *testing.T) {
	setup(t)

	_, err := run(t, "", "check-user", "not-an-email")
	assert.Error(t, err)
}

func TestLoginReadsPasswordFromStdin(t *testing.T) {
	setup(t)

	out, err := run(t, testPassword+"\n", "login", testEmail)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome, Ana Lopez")

	out, err = run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "ana")
	assert.Contains(t, out, testEmail)
	assert.Contains(t, out, "valid")
}

func TestLoginWrongPassword(t *testing.T) {
	setup(t)

	_, err := run(t, "", "login", testEmail, "-p", "wrong-password")
	assert.Error(t, err)

	out, err := run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not signed in")
}

func TestRegister(t *testing.T) {
	stub := setup(t)

	out, err := run(t, "new-pass-123\n", "register",
		"--username", "bea",
		"--email", "bea@example.com",
		"--first-name", "Bea",
		"--last-name", "Ruiz",
		"--phone", "+34600000000",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Account created")
	assert.Equal(t, 1, stub.Hits("/api/v1/auth/register"))

	_, err = run(t, "", "login", "bea@example.com", "-p", "new-pass-123")
	require.NoError(t, err)
}

func TestRegisterRequiresFlags(t *testing.T) {
	setup(t)

	_, err := run(t, "", "register", "--email", "bea@example.com", "--password", "new-pass-123")
	assert.Error(t, err)
}

func TestListLifecycle(t *testing.T) {
	setup(t)
	login(t)

	out, err := run(t, "", "lists")
	require.NoError(t, err)
	assert.Contains(t, out, "No lists yet")

	out, err = run(t, "", "create", "Weekly", "groceries", "-o", "json")
	require.NoError(t, err)
	var created listView
	require.NoError(t, sonic.UnmarshalString(out, &created))
	assert.Equal(t, "Weekly groceries", created.Name)
	assert.Equal(t, model.DefaultListType, created.Type)
	require.NotEmpty(t, created.ID)

	out, err = run(t, "", "add", created.ID, "Milk", "--quantity", "2", "--notes", "semi-skimmed")
	require.NoError(t, err)
	assert.Contains(t, out, "Milk")
	assert.Contains(t, out, model.DefaultItemStatus)

	out, err = run(t, "", "lists")
	require.NoError(t, err)
	assert.Contains(t, out, "Weekly groceries")
	assert.Contains(t, out, "ITEMS")

	out, err = run(t, "", "list", created.ID, "-o", "yaml")
	require.NoError(t, err)
	var shown listView
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	require.Len(t, shown.Items, 1)
	assert.Equal(t, "Milk", shown.Items[0].Name)

	out, err = run(t, "", "delete", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted list "+created.ID)

	_, err = run(t, "", "list", created.ID)
	assert.Error(t, err)
}

func TestExpiredTokenRenewsTransparently(t *testing.T) {
	stub := setup(t)
	login(t)

	stub.ExpireAccessTokens()
	_, err := run(t, "", "lists")
	require.NoError(t, err)
	assert.Equal(t, 1, stub.Refreshes())

	// The renewed pair was persisted, so the next run needs no refresh.
	_, err = run(t, "", "lists")
	require.NoError(t, err)
	assert.Equal(t, 1, stub.Refreshes())
}

func TestRevokedSessionSurfacesUnauthorized(t *testing.T) {
	stub := setup(t)
	login(t)

	stub.ExpireAccessTokens()
	stub.RevokeRefreshTokens()
	_, err := run(t, "", "lists")
	require.Error(t, err)

	var buf bytes.Buffer
	reportError(&buf, err)
	assert.Contains(t, buf.String(), "shoplist login")
}

func TestLogout(t *testing.T) {
	setup(t)
	login(t)

	out, err := run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out")

	out, err = run(t, "", "status", "-o", "json")
	require.NoError(t, err)
	var view statusView
	require.NoError(t, sonic.UnmarshalString(out, &view))
	assert.False(t, view.Authenticated)
}

func TestUnknownOutputFormat(t *testing.T) {
	setup(t)

	_, err := run(t, "", "status", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestTokenExpiry(t *testing.T) {
	stub := setup(t)
	access, _ := stub.IssueTokens(testEmail)

	exp := tokenExpiry(access)
	require.NotNil(t, exp)
	assert.True(t, exp.After(time.Now()))

	assert.Nil(t, tokenExpiry("not-a-jwt"))
}
