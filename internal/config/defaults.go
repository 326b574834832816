package config

const (
	defaultConfigPath      = "~/.config/sortdir/config.toml"
	projectConfigName      = "sortdir.toml"
	defaultLockDir         = "~/.local/state/sortdir/locks"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultMaxExtractedMiB = 10240
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LockDir: defaultLockDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Archives: Archives{
			MaxExtractedMiB: defaultMaxExtractedMiB,
		},
	}
}
