package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:       "https://talentbot.contoso.com",
		Port:          3978,
		DataDir:       ".talentbot",
		TopCandidates: 3,
		MaxPositions:  5,
	}
}
