package common

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner and logs the resolved,
// sanitized configuration.
func PrintBanner(config *Config, logger arbor.ILogger) {
	banner.Print("Places", GetVersion())

	logger.Debug().
		Str("base_url", config.PlacesAPI.BaseURL).
		Str("language", config.PlacesAPI.Language).
		Str("request_timeout", config.PlacesAPI.Timeout().String()).
		Bool("api_key_set", config.PlacesAPI.APIKey != "").
		Bool("access_token_set", config.PlacesAPI.AccessToken != "").
		Str("log_level", config.Logging.Level).
		Msg("Resolved configuration (sanitized)")
}
