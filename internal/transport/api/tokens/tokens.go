package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MemberClaims выдается внешним провайдером идентичности: стабильный id
// участника плюс телефон и имя для подписи кошелька и контрагента по умолчанию.
type MemberClaims struct {
	jwt.RegisteredClaims
	MemberID int64
	Phone    string
	FullName string
}

func GenerateMemberJWT(claims MemberClaims, expire time.Duration, key []byte) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating member jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateMemberJWT(tokenString string, key []byte) (*jwt.Token, error) {
	token, err := validateJWT(tokenString, new(MemberClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating member jwt token: %w", err)
	}

	_, ok := token.Claims.(*MemberClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return token, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
