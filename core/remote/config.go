package remote

// Config holds the locations of the three upstream dumps.
type Config struct {
	// ProtoURL points at the protocol description text (enum definitions).
	ProtoURL string `mapstructure:"proto_url" default:"https://raw.githubusercontent.com/Furtif/POGOProtos/master/base/base.proto"`
	// GameMasterURL points at the flat game-master settings dump.
	GameMasterURL string `mapstructure:"gamemaster_url" default:"https://raw.githubusercontent.com/PokeMiners/game_masters/master/latest/latest.json"`
	// LocaleURL is a template for the locale string table; {lang} is replaced
	// with the lower-cased language name.
	LocaleURL string `mapstructure:"locale_url" default:"https://raw.githubusercontent.com/PokeMiners/pogo_assets/master/Texts/Latest%20APK/JSON/i18n_{lang}.json"`
	// Language is the default translation language for reloads.
	Language string `mapstructure:"language" default:"english"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
