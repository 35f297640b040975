package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"portal" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret         string `default:"portal-dev-secret" env:"AUTH_JWT_SECRET"`
		JWTExpireInSec    int    `default:"86400" env:"AUTH_JWT_EXPIRE_IN_SEC"`
		PasswordAttempts  int    `default:"5" env:"AUTH_PASSWORD_ATTEMPTS"`
		PasswordWindowSec int    `default:"600" env:"AUTH_PASSWORD_WINDOW_SEC"`
	}
	// Requests declares the default status-case filter each listing applies
	// when the caller supplies no status. Kept in config so the policy is
	// explicit instead of being buried at call sites.
	Requests struct {
		GeneralDefaultCase  int `default:"1" env:"REQUESTS_GENERAL_DEFAULT_CASE"`
		AssignedDefaultCase int `default:"4" env:"REQUESTS_ASSIGNED_DEFAULT_CASE"`
	}
	Erp struct {
		Host     string `default:"" env:"ERP_HOST"`
		User     string `default:"" env:"ERP_USER"`
		Password string `default:"" env:"ERP_PASSWORD"`
		Company  string `default:"" env:"ERP_COMPANY_DB"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
