package config

// APIConfig configures the read-only HTTP API served by the serve command.
type APIConfig struct {
	Addr string `json:"addr"`
	// AllowedOrigins feeds the CORS middleware.
	AllowedOrigins []string `json:"allowed_origins"`
	// Token, when set, requires "Bearer <token>" authorization on every
	// request.
	Token string `json:"token"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}
