package config

const (
	defaultDataDir   = "~/.local/share/melelink"
	defaultLogDir    = "~/.local/share/melelink/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultHighThreshold            = 95
	defaultMediumThreshold          = 70
	defaultLowThreshold             = 0
	defaultMinRelevance             = 20
	defaultTitleWeight              = 0.5
	defaultComposerWeight           = 0.3
	defaultPubYearBonus             = 5
	defaultExactTitleThreshold      = 95
	defaultComposerConfirmThreshold = 80
	defaultAlgorithmVersion         = "v1.0"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Matching: Matching{
			HighThreshold:            defaultHighThreshold,
			MediumThreshold:          defaultMediumThreshold,
			LowThreshold:             defaultLowThreshold,
			MinRelevance:             defaultMinRelevance,
			TitleWeight:              defaultTitleWeight,
			ComposerWeight:           defaultComposerWeight,
			PubYearBonus:             defaultPubYearBonus,
			ExactTitleThreshold:      defaultExactTitleThreshold,
			ComposerConfirmThreshold: defaultComposerConfirmThreshold,
			AlgorithmVersion:         defaultAlgorithmVersion,
			AutoLink:                 true,
		},
	}
}
