package config

import "os"

type Config struct {
	Root       string
	ListenAddr string
	DataPath   string
	AuthUser   string
	AuthPass   string
	AuthFile   string
	CodeStyle  string
}

func Load() Config {
	return Config{
		Root:       envOr("VIEWMD_ROOT", "."),
		ListenAddr: envOr("VIEWMD_LISTEN_ADDR", ":8000"),
		DataPath:   os.Getenv("VIEWMD_DATA_PATH"),
		AuthUser:   os.Getenv("VIEWMD_AUTH_USER"),
		AuthPass:   os.Getenv("VIEWMD_AUTH_PASS"),
		AuthFile:   os.Getenv("VIEWMD_AUTH_FILE"),
		CodeStyle:  envOr("VIEWMD_CODE_STYLE", "github"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
