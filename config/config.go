package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// Database configuration
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis configuration
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

// LoadConfig reads configuration from a .env file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// The config file is optional; environment variables still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	// The storage endpoint and access key have no usable defaults.
	if config.DBHost == "" {
		return config, fmt.Errorf("DB_HOST must be set in environment")
	}
	if config.DBPassword == "" {
		return config, fmt.Errorf("DB_PASSWORD must be set in environment")
	}

	if config.ServerPort == "" {
		config.ServerPort = "8000"
	}
	if config.DBPort == "" {
		config.DBPort = "3306"
	}
	if config.DBUser == "" {
		config.DBUser = "root"
	}
	if config.DBName == "" {
		config.DBName = "superweirdonebud"
	}

	return
}

// GetDBConnString returns the MySQL DSN.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString returns the Redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
