package auth

import "github.com/golang-jwt/jwt/v5"

// OperatorTokenPayload captures the data available when minting a JWT.
type OperatorTokenPayload struct {
	Operator string
	JTI      string
}

// OperatorClaims is the typed JWT carried by CRM operators and the CLI.
type OperatorClaims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}
