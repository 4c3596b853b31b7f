package auth

import "github.com/golang-jwt/jwt/v5"

// CallerClaims are the claims of a project-issued bearer token
// (anon, service_role, or an authenticated user).
type CallerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
