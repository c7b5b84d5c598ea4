// Package cli drives the interactive projectpad client. The UI is a
// two-state machine — unauthenticated shows the login/signup form,
// authenticated shows the project dashboard — with named transitions
// instead of ad hoc flags.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"projectpad/internal/client/api"
	"projectpad/internal/client/session"
)

type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
)

// Mode selects which form the unauthenticated screen submits.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

const minPasswordLen = 6

// API is the server surface the app talks to.
type API interface {
	Signup(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*api.LoginResult, error)
	CreateProject(ctx context.Context, userID, title, description string) (*api.Project, error)
	ListProjects(ctx context.Context, userID string) ([]api.Project, error)
	DeleteProject(ctx context.Context, id string) error
	SetToken(token string)
}

// SessionStore is the durable local storage for the session.
type SessionStore interface {
	Load() (*session.Session, error)
	Save(sess *session.Session) error
	Clear() error
}

// Credentials is the form state of the unauthenticated screen.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

type App struct {
	api   API
	store SessionStore
	out   io.Writer

	state    State
	mode     Mode
	form     Credentials
	session  *session.Session
	projects []api.Project
}

func NewApp(apiClient API, store SessionStore, out io.Writer) *App {
	return &App{
		api:   apiClient,
		store: store,
		out:   out,
		state: StateUnauthenticated,
		mode:  ModeLogin,
	}
}

func (a *App) State() State { return a.state }

func (a *App) FormMode() Mode { return a.mode }

func (a *App) Form() Credentials { return a.form }

func (a *App) Projects() []api.Project { return a.projects }

func (a *App) Session() *session.Session { return a.session }

// Restore loads the saved session, if any, and transitions straight to the
// authenticated state without a login call. The project list is fetched
// exactly once for the restored user. Returns true when a session was found.
func (a *App) Restore(ctx context.Context) (bool, error) {
	sess, err := a.store.Load()
	if err != nil {
		return false, err
	}
	if sess == nil {
		return false, nil
	}

	a.session = sess
	a.api.SetToken(sess.Token)
	a.state = StateAuthenticated
	a.fetchProjects(ctx)
	return true, nil
}

// ToggleMode flips the unauthenticated screen between login and signup.
func (a *App) ToggleMode() {
	if a.mode == ModeLogin {
		a.mode = ModeSignup
	} else {
		a.mode = ModeLogin
	}
}

// Submit validates the form and submits it according to the current mode.
// Validation lives here, on the client: the server deliberately checks less.
func (a *App) Submit(ctx context.Context, creds Credentials) {
	a.form = creds

	if creds.Email == "" || creds.Password == "" {
		a.alert("Please fill in all required fields.")
		return
	}
	if len(creds.Password) < minPasswordLen {
		a.alert("Password must be at least 6 characters long.")
		return
	}
	if a.mode == ModeSignup && creds.Name == "" {
		a.alert("Please enter your full name for signup.")
		return
	}

	if a.mode == ModeLogin {
		a.submitLogin(ctx, creds)
	} else {
		a.submitSignup(ctx, creds)
	}
}

// submit-success transition: persist the session and enter the dashboard.
func (a *App) submitLogin(ctx context.Context, creds Credentials) {
	result, err := a.api.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		a.alert(alertText(err, "Something went wrong. Please try again."))
		return
	}

	sess := &session.Session{
		Token: result.Token,
		User: session.User{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
		},
	}
	if err := a.store.Save(sess); err != nil {
		a.alert("Could not save your session: " + err.Error())
	}

	a.session = sess
	a.api.SetToken(sess.Token)
	a.state = StateAuthenticated
	a.printf("%s Welcome, %s!\n", result.Message, sess.User.Name)
	a.fetchProjects(ctx)
}

// Signup success stays on the unauthenticated screen: the mode switches to
// login and the password field is cleared. No auto-login.
func (a *App) submitSignup(ctx context.Context, creds Credentials) {
	if err := a.api.Signup(ctx, creds.Name, creds.Email, creds.Password); err != nil {
		a.alert(alertText(err, "Something went wrong. Please try again."))
		return
	}

	a.mode = ModeLogin
	a.form.Password = ""
	a.printf("Registration Successful! Redirecting to Login...\n")
}

// AddProject creates a project for the logged-in user and appends the
// server-returned record to the in-memory list.
func (a *App) AddProject(ctx context.Context, title, description string) {
	if a.state != StateAuthenticated {
		a.alert("Please login first.")
		return
	}
	if title == "" {
		a.alert("Title is required!")
		return
	}

	project, err := a.api.CreateProject(ctx, a.session.User.ID, title, description)
	if err != nil {
		a.alert("Failed to add project")
		return
	}
	a.projects = append(a.projects, *project)
}

// DeleteProject removes the project optimistically: a successful call drops
// the id from the in-memory list without inspecting the response body.
func (a *App) DeleteProject(ctx context.Context, id string) {
	if a.state != StateAuthenticated {
		a.alert("Please login first.")
		return
	}

	if err := a.api.DeleteProject(ctx, id); err != nil {
		a.alert("Failed to delete")
		return
	}

	kept := a.projects[:0]
	for _, p := range a.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	a.projects = kept
}

// Logout is the second named transition: clear durable storage and reset.
func (a *App) Logout() {
	if err := a.store.Clear(); err != nil {
		a.alert("Could not clear your session: " + err.Error())
	}
	a.session = nil
	a.projects = nil
	a.api.SetToken("")
	a.state = StateUnauthenticated
	a.mode = ModeLogin
}

func (a *App) fetchProjects(ctx context.Context) {
	projects, err := a.api.ListProjects(ctx, a.session.User.ID)
	if err != nil {
		a.alert("Error fetching projects")
		return
	}
	a.projects = projects
}

// alert is the single user-facing failure surface: one line, no retry.
func (a *App) alert(message string) {
	a.printf("! %s\n", message)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func alertText(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return fallback + " (" + msg + ")"
	}
	return fallback
}
