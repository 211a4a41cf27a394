package auth

const (
	// DefaultRole matches the role hosted auth providers put on signed-in users
	DefaultRole = "authenticated"

	bearerPrefix = "Bearer "

	ErrMsgMissingSubject = "token has no subject"

	LogMsgInvalidToken = "Rejected session token"
)
