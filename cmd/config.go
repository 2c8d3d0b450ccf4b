package cmd

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	OrderTypeStrategy string
	UploadRootDir     string
	UploadBaseURL     string
	RateLimitPerSec   string
	RateLimitBurst    string
}
