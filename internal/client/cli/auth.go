package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dara283/clio-client/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates remote-first with local
// fallback. The password bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		printAuthError(err)
		return err
	}

	log.Printf("Logged in as %s (%s mode)", user.Email, a.mode())
	return nil
}

// Signup prompts for a name, email and password and registers a new account.
// On success the user is logged in immediately.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Signup(ctx, email, string(password), name)
	if err != nil {
		printAuthError(err)
		return err
	}

	log.Printf("Account created, logged in as %s (%s mode)", user.Email, a.mode())
	return nil
}

// Logout clears the session; repeating it is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// Whoami shows the active session and whether it is remote-backed.
func (a *App) Whoami(ctx context.Context) error {
	cur := a.sessions.Current()
	if cur == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s>, %s session\n", cur.User.Name, cur.User.Email, a.mode())
	return nil
}

func printAuthError(err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Println("Invalid credentials.")
	case errors.Is(err, common.ErrAccountExists):
		fmt.Println("Account already exists.")
	case errors.Is(err, common.ErrValidation):
		fmt.Println(err.Error())
	default:
		log.Printf("Error: %s", err.Error())
	}
}
