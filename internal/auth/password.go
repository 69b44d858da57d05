// SPDX-License-Identifier: MIT
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/verdantgarden/verdant/internal/config"
)

const defaultHashCost = 12

// hashCost returns auth.bcrypt_cost from config. Tests and early CLI
// paths may run before InitConfig, where config reports zero; values
// outside bcrypt's supported range also fall back to the default.
func hashCost() int {
	cost := config.GetInt("auth.bcrypt_cost")
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return defaultHashCost
	}
	return cost
}

// HashPassword hashes a password with bcrypt at the configured cost.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost())
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	if password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
