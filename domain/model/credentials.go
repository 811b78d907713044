package model

// CredentialBundle holds the OAuth2 tokens and client identifiers needed to
// call the video platform on the user's behalf. It lives only in the
// server-side session; there is no refresh logic, a stale bundle means the
// caller re-runs the authorization flow.
type CredentialBundle struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	TokenURI     string   `json:"tokenUri"`
	ClientID     string   `json:"clientId"`
	ClientSecret string   `json:"clientSecret"`
	Scopes       []string `json:"scopes"`
}
