package dto

// IssueTokenRequest is the body of POST /jwt.
type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	// IDToken is a Firebase ID token proving control of Email. Required only
	// when the server is configured with a Firebase project.
	IDToken string `json:"idToken,omitempty"`
}

// TokenResponse represents the response for a successful token issuance.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
