package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"wesion-bff/domain/dto"
	"wesion-bff/domain/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AccessTokenCookie is the HTTP-only cookie the login handler sets.
const AccessTokenCookie = "access_token"

// Auth guards the admin routes. The access token travels in an HTTP-only
// cookie rather than an Authorization header; when a secret key is configured
// the token signature and expiry are checked, otherwise presence is enough and
// the upstream backend remains the authority.
func Auth(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		res := dto.Fail("Unauthorized")

		tokenString, err := ctx.Cookie(AccessTokenCookie)
		if err != nil || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		if secretKey == "" {
			ctx.Next()
			return
		}

		userClaims, token, err := getClaim(tokenString, secretKey)
		if err != nil || !token.Valid {
			res.Message = describe(err)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set("user_id", userClaims.Issuer)
		ctx.Set("user_name", userClaims.UserName)
		ctx.Set("user_role", userClaims.Role)
		ctx.Next()
	}
}

func describe(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
		return fmt.Sprintf("Couldn't handle this token:%v", err)
	}
	return "Unauthorized"
}

func getClaim(tokenString, secretKey string) (model.UserClaims, *jwt.Token, error) {
	var userClaims model.UserClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&userClaims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
	)
	return userClaims, token, err
}
