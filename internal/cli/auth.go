package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Hari20032005/assignment-nudge/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, name, and password and creates an account.
// A confirmation code is issued; the account stays inactive until the user
// runs `confirm`.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, email, name, password); err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}

	fmt.Println("Account created. Check the log for your confirmation code, then run 'confirm'.")
	return nil
}

// Confirm prompts for the code sent at registration and activates the
// account.
func (a *App) Confirm(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	code, err := getSimpleText(a.reader, "Enter confirmation code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.ConfirmSignUp(ctx, email, code); err != nil {
		fmt.Println("Confirmation failed:", err)
		return err
	}

	fmt.Println("Account confirmed. You can now log in.")
	return nil
}

// ResendCode issues a fresh confirmation code for a pending account.
func (a *App) ResendCode(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.ResendCode(ctx, email); err != nil {
		fmt.Println("Could not resend code:", err)
		return err
	}

	fmt.Println("A new code has been issued.")
	return nil
}

// Login authenticates and switches to the user's own collection.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	a.switchScope(ctx, services.ScopeForUser(u.ID), u)
	fmt.Printf("Logged in as %s.\n", u.Email)
	return nil
}

// Logout drops the session and returns to the anonymous collection.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}

	a.switchScope(ctx, services.AnonymousScope, nil)
	fmt.Println("Logged out.")
	return nil
}

// ForgotPassword issues a reset code for a registered account.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		fmt.Println("Could not issue reset code:", err)
		return err
	}

	fmt.Println("Reset code issued. Run 'reset-password' with it.")
	return nil
}

// ResetPassword verifies the reset code and sets a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	code, err := getSimpleText(a.reader, "Enter reset code", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.ResetPassword(ctx, email, code, password); err != nil {
		fmt.Println("Password reset failed:", err)
		return err
	}

	fmt.Println("Password updated. Log in with the new one.")
	return nil
}
