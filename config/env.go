package config

import (
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/spf13/viper"
)

// Env is structure containing env variables
type Env struct {
	ResendAPIKey             string        `mapstructure:"RESEND_API_KEY"`
	DSN                      string        `mapstructure:"DATABASE_URL" validate:"required"`
	RedisRatelimiterUsername string        `mapstructure:"REDIS_RATELIMITER_USERNAME"`
	RedisRatelimiterPassword string        `mapstructure:"REDIS_RATELIMITER_PASSWORD"`
	RedisRatelimiterHost     string        `mapstructure:"REDIS_RATELIMITER_HOST" validate:"required"`
	RedisSessionURL          string        `mapstructure:"REDIS_SESSION_URL" validate:"required,uri"`
	RedisSystemURL           string        `mapstructure:"REDIS_SYSTEM_URL" validate:"required,uri"`
	SessionSecret            string        `mapstructure:"SESSION_SECRET" validate:"required"`
	CoinAPIKey               string        `mapstructure:"COINAPI_KEY"`
	DevEnv                   string        `mapstructure:"DEV_ENV" validate:"required,oneof=DEV PROD TEST"`
	Port                     string        `mapstructure:"PORT" validate:"required,numeric"`
	FrontendHostname         string        `mapstructure:"FRONTEND_HOSTNAME" validate:"required,hostname"`
	FrontendURL              string        `mapstructure:"FRONTEND_URL" validate:"required,url"`
	SessionExpires           time.Duration `mapstructure:"SESSION_EXPIRED_IN" validate:"required"`
	SessionMaxAge            int           `mapstructure:"SESSION_MAXAGE" validate:"required,number"`
	RedisRatelimiterPort     int           `mapstructure:"REDIS_RATELIMITER_PORT" validate:"required,number"`
}

// Load is a function that is used to laod the env variables from the file and the enviroment
func (e *Env) Load(path ...string) {
	configPath := "."
	if len(path) != 0 {
		configPath = path[0]
	}

	viper.AddConfigPath(configPath)
	viper.SetConfigFile(configPath + "/.env")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		logger.Error(err)
	}

	err = viper.Unmarshal(&e)
	if err != nil {
		logger.Errorf(err)
	}

	logger.Validatef(e)
}
