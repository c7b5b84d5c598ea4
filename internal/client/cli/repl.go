package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Run drives the interactive loop until quit or EOF. It first tries to
// restore a saved session so a returning user lands straight on the
// dashboard.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)

	restored, err := a.Restore(ctx)
	if err != nil {
		a.alert("Could not restore your session: " + err.Error())
	}
	if restored {
		a.printf("Welcome back, %s!\n", a.session.User.Name)
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		var quit bool
		var loopErr error
		if a.state == StateUnauthenticated {
			quit, loopErr = a.runFormScreen(ctx, reader)
		} else {
			quit, loopErr = a.runDashboardScreen(ctx, reader)
		}
		if loopErr != nil {
			if errors.Is(loopErr, io.EOF) {
				return nil
			}
			return loopErr
		}
		if quit {
			return nil
		}
	}
}

func (a *App) runFormScreen(ctx context.Context, reader *bufio.Reader) (bool, error) {
	if a.mode == ModeLogin {
		a.printf("-- Login -- (type 'switch' for signup, 'quit' to exit)\n")
	} else {
		a.printf("-- Signup -- (type 'switch' for login, 'quit' to exit)\n")
	}

	var creds Credentials

	if a.mode == ModeSignup {
		name, err := a.prompt(reader, "Full Name")
		if err != nil {
			return false, err
		}
		switch name {
		case "switch":
			a.ToggleMode()
			return false, nil
		case "quit":
			return true, nil
		}
		creds.Name = name
	}

	email, err := a.prompt(reader, "Email Address")
	if err != nil {
		return false, err
	}
	switch email {
	case "switch":
		a.ToggleMode()
		return false, nil
	case "quit":
		return true, nil
	}
	creds.Email = email

	password, err := a.prompt(reader, "Password")
	if err != nil {
		return false, err
	}
	creds.Password = password

	a.Submit(ctx, creds)
	return false, nil
}

func (a *App) runDashboardScreen(ctx context.Context, reader *bufio.Reader) (bool, error) {
	line, err := a.prompt(reader, fmt.Sprintf("projectpad (%s)", a.session.User.Name))
	if err != nil {
		return false, err
	}

	command, arg, _ := strings.Cut(line, " ")
	switch command {
	case "list":
		a.printProjects()
	case "add":
		title, err := a.prompt(reader, "Project Name")
		if err != nil {
			return false, err
		}
		description, err := a.prompt(reader, "Brief Description")
		if err != nil {
			return false, err
		}
		a.AddProject(ctx, title, description)
	case "delete":
		if arg == "" {
			a.alert("Usage: delete <project id>")
			break
		}
		a.DeleteProject(ctx, arg)
	case "logout":
		a.Logout()
	case "quit":
		return true, nil
	case "", "help":
		a.printf("Commands: list, add, delete <id>, logout, quit\n")
	default:
		a.printf("Unknown command %q. Try 'help'.\n", command)
	}
	return false, nil
}

func (a *App) printProjects() {
	if len(a.projects) == 0 {
		a.printf("No projects added yet.\n")
		return
	}
	a.printf("MY PROJECTS:\n")
	for _, p := range a.projects {
		a.printf("  %s  %s", p.ID, p.Title)
		if p.Description != "" {
			a.printf(" - %s", p.Description)
		}
		a.printf("\n")
	}
}

func (a *App) prompt(reader *bufio.Reader, label string) (string, error) {
	a.printf("%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
