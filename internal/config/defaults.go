package config

const (
	defaultDataDir        = "~/.local/share/muster"
	defaultLogDir         = "~/.local/share/muster/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultRatioThreshold = 0.75
	defaultRedMinutes     = 0
	defaultYellowMinutes  = 15
	defaultGreenMinutes   = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Clustering: Clustering{
			RatioThreshold: defaultRatioThreshold,
		},
		Report: Report{
			RedMinutes:    defaultRedMinutes,
			YellowMinutes: defaultYellowMinutes,
			GreenMinutes:  defaultGreenMinutes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
