package config

// Config is the top-level talentbot configuration, corresponding to
// .talentbot.yml.
type Config struct {
	// AppID and AppPassword are the Bot Framework app credentials. Both may
	// be empty when running against a local emulator.
	AppID       string `yaml:"app_id" koanf:"app_id"`
	AppPassword string `yaml:"app_password" koanf:"app_password"`

	// BaseURL is the public root the bot is reachable at; card image links
	// are built from it.
	BaseURL string `yaml:"base_url" koanf:"base_url"`

	Port    int    `yaml:"port" koanf:"port"`
	DataDir string `yaml:"data_dir" koanf:"data_dir"`

	// TopCandidates and MaxPositions cap the provider result sizes.
	TopCandidates int `yaml:"top_candidates" koanf:"top_candidates"`
	MaxPositions  int `yaml:"max_positions" koanf:"max_positions"`

	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	LogJSON         bool `yaml:"log_json" koanf:"log_json"`
	Debug           bool `yaml:"debug" koanf:"debug"`
}
