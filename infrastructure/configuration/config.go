package configuration

import (
	"fmt"
	"os"
	"strconv"

	"my-videos/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App      App      `json:"app"`
	Database Database `json:"database"`
	Logger   Logger   `json:"logger"`
	YouTube  YouTube  `json:"youtube"`
	OAuth    OAuth    `json:"oauth"`
}

type App struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type Database struct {
	// Vendor selects the storage engine: "sqlite" (default, file-backed) or "postgres".
	Vendor string `json:"vendor"`
	Sqlite Sqlite `json:"sqlite"`
	Psql   Db     `json:"psql"`
}

type Sqlite struct {
	Path string `json:"path"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type Logger struct {
	Format string `json:"format"`
}

type YouTube struct {
	// ClientSecretsFile points at a Google client-secrets JSON file; when
	// present it supplies client id/secret and takes precedence over the
	// inline fields below.
	ClientSecretsFile string   `json:"clientSecretsFile"`
	ClientID          string   `json:"clientId"`
	ClientSecret      string   `json:"clientSecret"`
	RedirectURI       string   `json:"redirectURI"`
	Scopes            []string `json:"scopes"`
}

// OAuth holds transport policy for the authorization flow.
type OAuth struct {
	// AllowInsecureRedirect permits a plain http:// redirect URI. Local
	// development only; the flow refuses insecure transport by default.
	AllowInsecureRedirect bool `json:"allowInsecureRedirect"`
}

var C Config

func init() {
	LoadConfig()
	initApp(&C)
	initDatabase(&C)
	initOAuth(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(C *Config) {
	if C.App.Host == "" {
		C.App.Host = getEnv("APP_HOST", "localhost")
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8090
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8090
	}
}

func initDatabase(C *Config) {
	if v := os.Getenv("DB_VENDOR"); v != "" {
		C.Database.Vendor = v
	}
	if C.Database.Vendor == "" {
		C.Database.Vendor = "sqlite"
	}
	if C.Database.Sqlite.Path == "" {
		C.Database.Sqlite.Path = getEnv("SQLITE_PATH", "database.db")
	}
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
}

func initOAuth(C *Config) {
	// Secure transport stays the default unless a dev opts out.
	switch os.Getenv("OAUTH_INSECURE_TRANSPORT") {
	case "1", "true", "TRUE", "True":
		C.OAuth.AllowInsecureRedirect = true
	}
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
