package config

import (
	"errors"
	"fmt"
)

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleJWTSecret  = "super-secret-jwt-token-with-at-least-32-characters-long"
)

// minJWTSecretLength matches what the hosted auth service issues
const minJWTSecretLength = 32

// Validate rejects configurations the server cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.MaxRequestBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_REQUEST_BYTES must be positive, got %d", c.MaxRequestBytes))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.CanvasMaxWidth <= 0 || c.CanvasMaxHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas bounds must be positive, got %dx%d", c.CanvasMaxWidth, c.CanvasMaxHeight))
	}
	if c.ImageFetchMaxBytes <= 0 {
		errs = append(errs, fmt.Errorf("IMAGE_FETCH_MAX_BYTES must be positive, got %d", c.ImageFetchMaxBytes))
	}
	return errors.Join(errs...)
}

// Warnings lists non-fatal issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.JWTSecret == exampleJWTSecret {
		warnings = append(warnings, "JWT_SECRET appears to be using the example value - copy the project's JWT secret from the backend settings")
	} else if len(c.JWTSecret) < minJWTSecretLength {
		warnings = append(warnings, fmt.Sprintf("JWT_SECRET is shorter than %d characters", minJWTSecretLength))
	}
	if c.S3AccessKey == "" || c.S3SecretKey == "" {
		warnings = append(warnings, "S3_ACCESS_KEY or S3_SECRET_KEY is not set - annotation uploads will fail")
	}

	return warnings
}
