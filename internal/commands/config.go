package commands

import "github.com/spf13/viper"

// Config holds the CLI settings read from formboard.yml and FORMBOARD_*
// environment variables. The config file is optional; every setting has a
// default or a flag override.
type Config struct {
	Data          string
	Listen        string
	ThemeManifest string
	ThemeVariant  string
}

func loadConfig() Config {
	v := viper.New()
	v.SetConfigName("formboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FORMBOARD")
	v.AutomaticEnv()

	v.SetDefault("data", "formboard.json")
	v.SetDefault("listen", ":8080")

	// Missing config file is fine; defaults and env cover everything.
	_ = v.ReadInConfig()

	return Config{
		Data:          v.GetString("data"),
		Listen:        v.GetString("listen"),
		ThemeManifest: v.GetString("theme.manifest"),
		ThemeVariant:  v.GetString("theme.variant"),
	}
}
