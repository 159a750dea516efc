// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	configPath     = pflag.String("config", ".", "Directory to look for the config.toml file in")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers = []string{"sqlite", "postgres"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(*configPath)

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("database.driver", "database_driver")
	v.BindEnv("database.dsn", "database_dsn")

	v.BindEnv("cors.allowed_origins", "cors_allowed_origins")

	v.BindEnv("upload.max_size", "upload_max_size")

	v.BindEnv("aws.access_key_id", "aws_access_key_id")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.bucket", "aws_bucket")
	v.BindEnv("aws.public_url", "aws_public_url")

	v.BindEnv("mail.enabled", "mail_enabled")
	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender_address", "mail_sender_address")
	v.BindEnv("mail.password", "mail_password")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "database.db")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("upload.max_size", 10)

	v.SetDefault("mail.enabled", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	// Tokens signed with an empty or guessable key can be forged by
	// anyone, so there's no default to fall back to here
	if v.GetString("jwt.secret") == "" {
		return errors.New("jwt.secret is not set. Refusing to start without a signing key")
	}

	if !slices.Contains(validDBDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("database.dsn") == "" {
		return errors.New("database.dsn can't be empty")
	}

	if len(v.GetStringSlice("cors.allowed_origins")) == 0 {
		return errors.New("cors.allowed_origins can't be empty")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	if v.GetString("aws.access_key_id") == "" {
		return errors.New("aws access key id can't be empty")
	}
	if v.GetString("aws.secret_access_key") == "" {
		return errors.New("aws secret access key can't be empty")
	}
	if v.GetString("aws.region") == "" {
		return errors.New("aws region can't be empty")
	}
	if v.GetString("aws.bucket") == "" {
		return errors.New("aws bucket can't be empty")
	}

	if v.GetBool("mail.enabled") {
		if v.GetString("mail.host") == "" {
			return errors.New("mail.host can't be empty")
		}
		if v.GetInt("mail.port") <= 0 {
			return errors.New("invalid mail.port provided")
		}
		if v.GetString("mail.sender_address") == "" {
			return errors.New("mail.sender_address can't be empty")
		}
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
