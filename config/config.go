package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	FCM    FCMConfig
	JWT    JWTConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	Enabled bool
}

type FCMConfig struct {
	Endpoint  string
	ServerKey string
	Enabled   bool
}

type JWTConfig struct {
	SecretKey string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	fcmKey := getEnv("FCM_SERVER_KEY", "")
	kafkaBrokers := getEnv("KAFKA_BROKERS", "")

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "6013"),
			AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:19006"), ","),
			ReadTimeout:    time.Second * 10,
			WriteTimeout:   time.Second * 10,
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "foodly"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(kafkaBrokers, ","),
			Topic:   getEnv("KAFKA_TOPIC", "order-events"),
			Enabled: kafkaBrokers != "",
		},
		FCM: FCMConfig{
			Endpoint:  getEnv("FCM_ENDPOINT", "https://fcm.googleapis.com/fcm/send"),
			ServerKey: fcmKey,
			Enabled:   fcmKey != "",
		},
		JWT: JWTConfig{
			SecretKey: getEnv("SECRET_KEY", ""),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
