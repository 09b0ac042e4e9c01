package port

//go:generate mockgen -source=token.go -destination=mock/token.go -package=mock

// TokenStore holds the bearer token for the signed-in vendor session. Token
// returns domain.ErrNoToken when the session has none, so callers can fail
// fast instead of sending an unauthenticated request.
type TokenStore interface {
	Token() (string, error)
	Set(token string)
	Clear()
}
