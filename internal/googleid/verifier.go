package googleid

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// ErrInvalidIDToken — Google ID token не прошёл проверку подписи или audience.
var ErrInvalidIDToken = errors.New("invalid google id token")

// Identity — проверенные утверждения из Google ID token.
type Identity struct {
	Email string
	Name  string
}

// Verifier проверяет ID token внешнего провайдера и извлекает идентичность.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

// GoogleVerifier — реализация поверх google.golang.org/api/idtoken.
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify валидирует подпись и audience токена, возвращает email и имя.
func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, fmt.Errorf("%w: no email claim", ErrInvalidIDToken)
	}

	return &Identity{Email: email, Name: name}, nil
}
