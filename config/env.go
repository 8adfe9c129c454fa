package config

import (
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/spf13/viper"
)

// Env is structure containing env variables
type Env struct {
	DSN                      string        `mapstructure:"DATABASE_URL" validate:"required"`
	ResendAPIKey             string        `mapstructure:"RESEND_API_KEY" validate:"required"`
	AccessTokenSecret        string        `mapstructure:"ACCESS_TOKEN_SECRET" validate:"required"`
	RefreshTokenSecret       string        `mapstructure:"REFRESH_TOKEN_SECRET" validate:"required"`
	RedisEmailURL            string        `mapstructure:"REDIS_EMAIL_URL" validate:"required,uri"`
	RedisSystemURL           string        `mapstructure:"REDIS_SYSTEM_URL" validate:"required,uri"`
	RedisRatelimiterUsername string        `mapstructure:"REDIS_RATELIMITER_USERNAME"`
	RedisRatelimiterPassword string        `mapstructure:"REDIS_RATELIMITER_PASSWORD"`
	RedisRatelimiterHost     string        `mapstructure:"REDIS_RATELIMITER_HOST" validate:"required"`
	MinioEndpoint            string        `mapstructure:"MINIO_ENDPOINT" validate:"required"`
	MinioAPIKeyID            string        `mapstructure:"MINIO_API_KEY_ID" validate:"required"`
	MinioAPIKeySecret        string        `mapstructure:"MINIO_API_KEY_SECRET" validate:"required"`
	MinioMediaBucket         string        `mapstructure:"MINIO_MEDIA_BUCKET" validate:"required"`
	DevEnv                   string        `mapstructure:"DEV_ENV" validate:"required,oneof=DEV PROD TEST"`
	Port                     string        `mapstructure:"PORT" validate:"required,numeric"`
	FrontendHostname         string        `mapstructure:"FRONTEND_HOSTNAME" validate:"required,hostname"`
	FrontendURL              string        `mapstructure:"FRONTEND_URL" validate:"required,url"`
	AdminSecret              string        `mapstructure:"ADMIN_SECRET" validate:"required"`
	CookieDomain             string        `mapstructure:"COOKIE_DOMAIN" validate:"required"`
	AccessTokenExpires       time.Duration `mapstructure:"ACCESS_TOKEN_EXPIRED_IN" validate:"required"`
	RefreshTokenExpires      time.Duration `mapstructure:"REFRESH_TOKEN_EXPIRED_IN" validate:"required"`
	OTPExpires               time.Duration `mapstructure:"OTP_EXPIRED_IN" validate:"required"`
	AccessTokenMaxAge        int           `mapstructure:"ACCESS_TOKEN_MAXAGE" validate:"required,number"`
	RefreshTokenMaxAge       int           `mapstructure:"REFRESH_TOKEN_MAXAGE" validate:"required,number"`
	RedisRatelimiterPort     int           `mapstructure:"REDIS_RATELIMITER_PORT" validate:"required,number"`
}

// Load is a function that is used to laod the env variables from the file and the enviroment
func (e *Env) Load(path ...string) {
	configPath := "."
	if len(path) > 0 {
		configPath = path[0]
	}

	viper.AddConfigPath(configPath)
	viper.SetConfigFile(".env")
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
