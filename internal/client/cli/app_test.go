package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"projectpad/internal/client/api"
	"projectpad/internal/client/session"
)

// fakeAPI records calls and serves canned results.
type fakeAPI struct {
	token string

	signupErr error
	loginRet  *api.LoginResult
	loginErr  error

	createRet *api.Project
	createErr error
	listRet   []api.Project
	listErr   error
	deleteErr error

	signupCalls int
	loginCalls  int
	createCalls int
	listCalls   int
	deleteCalls int

	lastListUserID  string
	lastDeleteID    string
	lastCreateTitle string
}

func (f *fakeAPI) Signup(ctx context.Context, name, email, password string) error {
	f.signupCalls++
	return f.signupErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.LoginResult, error) {
	f.loginCalls++
	return f.loginRet, f.loginErr
}

func (f *fakeAPI) CreateProject(ctx context.Context, userID, title, description string) (*api.Project, error) {
	f.createCalls++
	f.lastCreateTitle = title
	return f.createRet, f.createErr
}

func (f *fakeAPI) ListProjects(ctx context.Context, userID string) ([]api.Project, error) {
	f.listCalls++
	f.lastListUserID = userID
	return f.listRet, f.listErr
}

func (f *fakeAPI) DeleteProject(ctx context.Context, id string) error {
	f.deleteCalls++
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeAPI) SetToken(token string) { f.token = token }

// fakeStore is an in-memory SessionStore.
type fakeStore struct {
	sess       *session.Session
	saveCalls  int
	clearCalls int
}

func (f *fakeStore) Load() (*session.Session, error) { return f.sess, nil }

func (f *fakeStore) Save(sess *session.Session) error {
	f.sess = sess
	f.saveCalls++
	return nil
}

func (f *fakeStore) Clear() error {
	f.sess = nil
	f.clearCalls++
	return nil
}

func storedSession() *session.Session {
	return &session.Session{
		Token: "stored-token",
		User:  session.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
	}
}

func newTestApp(apiClient *fakeAPI, store *fakeStore) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewApp(apiClient, store, out), out
}

func TestRestoreWithStoredSession(t *testing.T) {
	apiClient := &fakeAPI{listRet: []api.Project{{ID: "p1", UserID: "u1", Title: "LabLink"}}}
	store := &fakeStore{sess: storedSession()}
	app, _ := newTestApp(apiClient, store)

	restored, err := app.Restore(context.Background())
	require.NoError(t, err)
	require.True(t, restored)

	// Authenticated without a login call, exactly one list fetch.
	require.Equal(t, StateAuthenticated, app.State())
	require.Equal(t, 0, apiClient.loginCalls)
	require.Equal(t, 1, apiClient.listCalls)
	require.Equal(t, "u1", apiClient.lastListUserID)
	require.Equal(t, "stored-token", apiClient.token)
	require.Len(t, app.Projects(), 1)
}

func TestRestoreWithoutSession(t *testing.T) {
	apiClient := &fakeAPI{}
	app, _ := newTestApp(apiClient, &fakeStore{})

	restored, err := app.Restore(context.Background())
	require.NoError(t, err)
	require.False(t, restored)
	require.Equal(t, StateUnauthenticated, app.State())
	require.Equal(t, 0, apiClient.listCalls)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		creds Credentials
		alert string
	}{
		{"missing email", ModeLogin, Credentials{Password: "secret1"}, "Please fill in all required fields."},
		{"missing password", ModeLogin, Credentials{Email: "a@b.c"}, "Please fill in all required fields."},
		{"short password", ModeLogin, Credentials{Email: "a@b.c", Password: "12345"}, "Password must be at least 6 characters long."},
		{"signup without name", ModeSignup, Credentials{Email: "a@b.c", Password: "123456"}, "Please enter your full name for signup."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			apiClient := &fakeAPI{}
			app, out := newTestApp(apiClient, &fakeStore{})
			if tc.mode == ModeSignup {
				app.ToggleMode()
			}

			app.Submit(context.Background(), tc.creds)

			require.Contains(t, out.String(), tc.alert)
			require.Equal(t, 0, apiClient.loginCalls)
			require.Equal(t, 0, apiClient.signupCalls)
			require.Equal(t, StateUnauthenticated, app.State())
		})
	}
}

func TestSubmitLoginSuccess(t *testing.T) {
	apiClient := &fakeAPI{
		loginRet: &api.LoginResult{
			Message: "Login successful!",
			Token:   "fresh-token",
			User:    api.UserSummary{ID: "u1", Name: "Alice", Email: "alice@example.com"},
		},
		listRet: []api.Project{{ID: "p1", UserID: "u1", Title: "LabLink"}},
	}
	store := &fakeStore{}
	app, _ := newTestApp(apiClient, store)

	app.Submit(context.Background(), Credentials{Email: "alice@example.com", Password: "hunter22"})

	require.Equal(t, StateAuthenticated, app.State())
	require.Equal(t, 1, store.saveCalls)
	require.Equal(t, "fresh-token", store.sess.Token)
	require.Equal(t, "fresh-token", apiClient.token)
	require.Equal(t, 1, apiClient.listCalls)
	require.Len(t, app.Projects(), 1)
}

func TestSubmitLoginFailureAlerts(t *testing.T) {
	apiClient := &fakeAPI{
		loginErr: &api.APIError{StatusCode: 401, Message: "Invalid password. Try again."},
	}
	store := &fakeStore{}
	app, out := newTestApp(apiClient, store)

	app.Submit(context.Background(), Credentials{Email: "alice@example.com", Password: "hunter22"})

	require.Equal(t, StateUnauthenticated, app.State())
	require.Equal(t, 0, store.saveCalls)
	require.Contains(t, out.String(), "Invalid password. Try again.")
}

func TestSubmitSignupSuccessSwitchesToLogin(t *testing.T) {
	apiClient := &fakeAPI{}
	store := &fakeStore{}
	app, out := newTestApp(apiClient, store)
	app.ToggleMode()

	app.Submit(context.Background(), Credentials{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})

	require.Equal(t, 1, apiClient.signupCalls)
	require.Equal(t, ModeLogin, app.FormMode())
	require.Empty(t, app.Form().Password)
	require.Equal(t, "alice@example.com", app.Form().Email)
	// No auto-login, no session persisted.
	require.Equal(t, StateUnauthenticated, app.State())
	require.Equal(t, 0, store.saveCalls)
	require.Contains(t, out.String(), "Registration Successful!")
}

func TestAddProject(t *testing.T) {
	apiClient := &fakeAPI{
		listRet:   []api.Project{},
		createRet: &api.Project{ID: "p1", UserID: "u1", Title: "LabLink", Description: "x"},
	}
	app, _ := newTestApp(apiClient, &fakeStore{sess: storedSession()})
	ctx := context.Background()

	_, err := app.Restore(ctx)
	require.NoError(t, err)

	app.AddProject(ctx, "LabLink", "x")
	require.Equal(t, 1, apiClient.createCalls)
	require.Len(t, app.Projects(), 1)
	require.Equal(t, "p1", app.Projects()[0].ID)
}

func TestAddProjectRequiresTitle(t *testing.T) {
	apiClient := &fakeAPI{listRet: []api.Project{}}
	app, out := newTestApp(apiClient, &fakeStore{sess: storedSession()})
	ctx := context.Background()

	_, err := app.Restore(ctx)
	require.NoError(t, err)

	app.AddProject(ctx, "", "desc")
	require.Equal(t, 0, apiClient.createCalls)
	require.Contains(t, out.String(), "Title is required!")
}

func TestDeleteProject(t *testing.T) {
	apiClient := &fakeAPI{
		listRet: []api.Project{
			{ID: "p1", UserID: "u1", Title: "A"},
			{ID: "p2", UserID: "u1", Title: "B"},
		},
	}
	app, _ := newTestApp(apiClient, &fakeStore{sess: storedSession()})
	ctx := context.Background()

	_, err := app.Restore(ctx)
	require.NoError(t, err)

	app.DeleteProject(ctx, "p1")
	require.Equal(t, "p1", apiClient.lastDeleteID)
	require.Len(t, app.Projects(), 1)
	require.Equal(t, "p2", app.Projects()[0].ID)
}

func TestDeleteProjectFailureKeepsList(t *testing.T) {
	apiClient := &fakeAPI{
		listRet:   []api.Project{{ID: "p1", UserID: "u1", Title: "A"}},
		deleteErr: errors.New("network down"),
	}
	app, out := newTestApp(apiClient, &fakeStore{sess: storedSession()})
	ctx := context.Background()

	_, err := app.Restore(ctx)
	require.NoError(t, err)

	app.DeleteProject(ctx, "p1")
	require.Len(t, app.Projects(), 1)
	require.Contains(t, out.String(), "Failed to delete")
}

func TestLogout(t *testing.T) {
	apiClient := &fakeAPI{listRet: []api.Project{{ID: "p1", UserID: "u1"}}}
	store := &fakeStore{sess: storedSession()}
	app, _ := newTestApp(apiClient, store)

	_, err := app.Restore(context.Background())
	require.NoError(t, err)

	app.Logout()
	require.Equal(t, StateUnauthenticated, app.State())
	require.Equal(t, 1, store.clearCalls)
	require.Nil(t, store.sess)
	require.Empty(t, app.Projects())
	require.Empty(t, apiClient.token)
}

func TestRunRestoresAndQuits(t *testing.T) {
	apiClient := &fakeAPI{listRet: []api.Project{}}
	app, out := newTestApp(apiClient, &fakeStore{sess: storedSession()})

	err := app.Run(context.Background(), strings.NewReader("quit\n"))
	require.NoError(t, err)
	require.Contains(t, out.String(), "Welcome back, Alice!")
	require.Equal(t, 1, apiClient.listCalls)
}

func TestRunEOFExitsCleanly(t *testing.T) {
	apiClient := &fakeAPI{}
	app, _ := newTestApp(apiClient, &fakeStore{})

	err := app.Run(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
}
