// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure so callers cannot
// tell whether the user exists.
var ErrInvalidCredentials = errors.New("invalid username or password")

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares password with a hash from HashPassword.
func CheckPassword(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// LoginEmail returns the email registered for username. Usernames without a
// domain get domain appended.
func LoginEmail(username string, domain string) string {
	username = strings.TrimSpace(username)
	if strings.Contains(username, "@") {
		return strings.ToLower(username)
	}
	return strings.ToLower(username) + "@" + domain
}
