package configuration

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"
)

// defaultClientSecretsFile is the Google client-secrets JSON produced by the
// API console.
const defaultClientSecretsFile = "client_id.json"

// GetOAuthConfig assembles the OAuth2 config for the video platform. A
// client-secrets file takes precedence; otherwise client id/secret come from
// the JSON config with environment variable fallback.
func GetOAuthConfig() (*oauth2.Config, error) {
	scopes := C.YouTube.Scopes
	if len(scopes) == 0 {
		// Full read/write access; requests must use SSL.
		scopes = []string{youtube.YoutubeForceSslScope}
	}

	secretsFile := getConfigValue(C.YouTube.ClientSecretsFile, "YOUTUBE_CLIENT_SECRETS_FILE", defaultClientSecretsFile)
	if data, err := os.ReadFile(secretsFile); err == nil {
		conf, err := google.ConfigFromJSON(data, scopes...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse client secrets file %s: %w", secretsFile, err)
		}
		conf.RedirectURL = redirectURL(conf.RedirectURL)
		return validateRedirect(conf)
	}

	clientID := getConfigValue(C.YouTube.ClientID, "YOUTUBE_CLIENT_ID", "")
	clientSecret := getConfigValue(C.YouTube.ClientSecret, "YOUTUBE_CLIENT_SECRET", "")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("no client secrets file at %s and no client id/secret configured", secretsFile)
	}

	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL(""),
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
	return validateRedirect(conf)
}

func redirectURL(fromSecrets string) string {
	defaultRedirect := fmt.Sprintf("http://%s:%d/oauth2callback", C.App.Host, C.App.Port)
	if v := getConfigValue(C.YouTube.RedirectURI, "YOUTUBE_REDIRECT_URL", ""); v != "" {
		return v
	}
	if fromSecrets != "" {
		return fromSecrets
	}
	return defaultRedirect
}

// validateRedirect enforces secure transport for the authorization flow
// unless the insecure toggle is set.
func validateRedirect(conf *oauth2.Config) (*oauth2.Config, error) {
	if strings.HasPrefix(conf.RedirectURL, "http://") && !C.OAuth.AllowInsecureRedirect {
		return nil, fmt.Errorf("redirect URL %s uses insecure transport; set OAUTH_INSECURE_TRANSPORT=1 for local development", conf.RedirectURL)
	}
	return conf, nil
}

// getConfigValue prefers the environment variable, then the config value, then
// the default. Placeholder values from sample configs are ignored.
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
