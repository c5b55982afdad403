package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// JWTSecret signs caller tokens. Empty falls back to the X-User-ID header.
	JWTSecret string `mapstructure:"jwt_secret" default:""`
	// Currency is the code appended to formatted totals.
	Currency string `mapstructure:"currency" default:"EUR"`
}

// TokenAuth reports whether callers must present a signed bearer token.
func (c Config) TokenAuth() bool {
	return c.JWTSecret != ""
}
