package general

// Config holds the general module configuration.
type Config struct {
	AboutText string `env:"GENERAL_ABOUT_TEXT" envDefault:"A message command bot with grouped commands, checks and rate limits."`
}
