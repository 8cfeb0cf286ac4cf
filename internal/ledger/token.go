// internal/ledger/token.go
package ledger

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extrai a expiração de um bearer token JWT sem validar a
// assinatura — a validação é responsabilidade do backend. Serve para avisar
// o operador antes de uma execução longa com token vencido.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("token inválido: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token sem claim de expiração")
	}
	return exp.Time, nil
}

// TokenExpired informa se o token já venceu. Tokens ilegíveis contam como
// vencidos; melhor abortar cedo do que falhar com 401 no meio do import.
func TokenExpired(token string, now time.Time) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return true
	}
	return exp.Before(now)
}
