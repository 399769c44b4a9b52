package config

const (
	defaultLogDir           = "~/.local/share/scoremerge/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultReviewTier       = 2
	defaultColor            = "auto"
	defaultSheetColumnWidth = 25
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Fusion: Fusion{
			ReviewTier:   defaultReviewTier,
			AllowOverlap: true,
		},
		Report: Report{
			Color:            defaultColor,
			SheetColumnWidth: defaultSheetColumnWidth,
		},
	}
}
