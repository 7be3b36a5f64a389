package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Database          string `usage:"games database file"`
	Mode              string `usage:"parsing mode: relaxed|strict"`
	Statics           string `usage:"statics directory, empty serves the embedded UI"`
	EnableCompression bool   `usage:"gzip responses"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:   ":8080",
		Database:   "games.db",
		Mode:       "relaxed",
		ShowBanner: true,
	}
}
