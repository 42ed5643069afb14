package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. An access token grants a session; a setup token only
// authorizes the Google password-completion step.
const (
	TokenPurposeAccess      = "access"
	TokenPurposeGoogleSetup = "google-setup"
)

// TokenClaims is the payload of every token this service signs. Subject
// is the user id.
type TokenClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}
