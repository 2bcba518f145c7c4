package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const usage = `usage:
  client version
  client signup <username> [bio]
  client login <username>
  client recipes <username>
  client create <username> <title> <instructions> [minutes]

The password is read from $` + passwordEnv + `, the terminal or stdin.`

var errUsage = errors.New(usage)

// run executes one command. Every invocation is a fresh process, so commands
// that need a session log in first and log out when done. password is only
// called once the arguments are known to be valid.
func run(ctx context.Context, api adapter.ServerAdapter, args []string, password passwordFunc, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "version":
		version, err := api.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, version)
		return err

	case "signup":
		if len(args) < 1 || len(args) > 2 {
			return errUsage
		}
		pw, err := password()
		if err != nil {
			return err
		}
		req := models.SignupRequest{Username: args[0], Password: pw}
		if len(args) == 2 {
			req.Bio = &args[1]
		}
		profile, err := api.Signup(ctx, req)
		if err != nil {
			return fmt.Errorf("signup: %w", err)
		}
		return printJSON(out, profile)

	case "login":
		if len(args) != 1 {
			return errUsage
		}
		return withSession(ctx, api, args[0], password, func() error {
			profile, err := api.CheckSession(ctx)
			if err != nil {
				return fmt.Errorf("check session: %w", err)
			}
			return printJSON(out, profile)
		})

	case "recipes":
		if len(args) != 1 {
			return errUsage
		}
		return withSession(ctx, api, args[0], password, func() error {
			recipes, err := api.ListRecipes(ctx)
			if err != nil {
				return fmt.Errorf("list recipes: %w", err)
			}
			return printJSON(out, recipes)
		})

	case "create":
		if len(args) < 3 || len(args) > 4 {
			return errUsage
		}
		req := models.CreateRecipeRequest{Title: args[1], Instructions: args[2]}
		if len(args) == 4 {
			minutes, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("minutes must be an integer: %w", err)
			}
			req.MinutesToComplete = &minutes
		}
		return withSession(ctx, api, args[0], password, func() error {
			recipe, err := api.CreateRecipe(ctx, req)
			if err != nil {
				return fmt.Errorf("create recipe: %w", err)
			}
			return printJSON(out, recipe)
		})

	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

func withSession(ctx context.Context, api adapter.ServerAdapter, username string, password passwordFunc, fn func() error) error {
	pw, err := password()
	if err != nil {
		return err
	}

	if _, err = api.Login(ctx, models.LoginRequest{Username: username, Password: pw}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return errors.Join(fn(), api.Logout(ctx))
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
