package helpers

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// SignedDetails is the verified identity the auth service encodes into
// bearer tokens. Token issuance lives in the identity service; this backend
// only verifies.
type SignedDetails struct {
	Email    string
	Name     string
	Uid      string
	UserType string
	jwt.StandardClaims
}

var SECRET_KEY string = os.Getenv("SECRET_KEY")

func ValidateToken(signedToken string) (claims *SignedDetails, msg string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(SECRET_KEY), nil
		},
	)
	if err != nil {
		msg = err.Error()
		return
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok {
		claims = nil
		msg = fmt.Sprintf("the token is invalid")
		return
	}
	if claims.ExpiresAt < time.Now().Local().Unix() {
		claims = nil
		msg = fmt.Sprintf("token is expired")
		return
	}
	return claims, msg
}
