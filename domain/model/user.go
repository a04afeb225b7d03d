package model

import "github.com/golang-jwt/jwt"

// User is the backend's user record as embedded in login and video responses.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserClaims are the claims carried by the backend-issued access token.
type UserClaims struct {
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// LinkingClaims are the claims of the short-lived token that keys a draft
// across the Vimeo authorization round trip.
type LinkingClaims struct {
	UserID int `json:"user_id"`
	jwt.StandardClaims
}
