package cmd

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	GeoBaseURL    string
	GeoAPIKey     string
	RedisAddr     string
	RedisPassword string
	RabbitURL     string
	RabbitQueue   string
}
