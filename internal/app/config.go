package app

import (
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/envutil"
	"github.com/srkarthi1982/language-learning-buddy/internal/pkg/logger"
)

type Config struct {
	Port            string
	Environment     string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CORSOrigins     []string
}

func LoadConfig(log *logger.Logger) Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	accessTTLSeconds := envutil.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTTLSeconds := envutil.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	var origins []string
	if raw := envutil.GetEnv("CORS_ORIGINS", "", log); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return Config{
		Port:            envutil.GetEnv("PORT", "8080", log),
		Environment:     envutil.GetEnv("APP_ENV", "development", log),
		JWTSecretKey:    envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTokenTTL:  time.Duration(accessTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTTLSeconds) * time.Second,
		CORSOrigins:     origins,
	}
}
