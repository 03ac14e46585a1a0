package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPUseSSL   bool

	UploadDir       string
	StudentSeedFile string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using ENV from the system")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running on Railway, using ENV from the system")
	}

	JWTSecret = GetEnv("JWT_SECRET")

	SMTPHost = GetEnv("MAIL_SERVER", "smtp.gmail.com")
	SMTPPort = getEnvInt("MAIL_PORT", 587)
	SMTPUsername = GetEnv("MAIL_USERNAME")
	SMTPPassword = GetEnv("MAIL_PASSWORD")
	SMTPFrom = GetEnv("MAIL_FROM", SMTPUsername)
	SMTPUseSSL = getEnvBool("MAIL_USE_SSL", false)

	UploadDir = GetEnv("UPLOAD_DIR", "uploads")
	StudentSeedFile = GetEnv("STUDENT_SEED_FILE", "internals/seeds/students/data_students.csv")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}

	if SMTPUsername == "" {
		log.Println("⚠️ MAIL_USERNAME is not set, notification emails will fail to send")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
