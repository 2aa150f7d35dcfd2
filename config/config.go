package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// servidor
	ServerPort  string `env:"SERVER_PORT" envDefault:"8090"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"pontoweb"`

	// API remota de ponto
	BackendBaseURL   string `env:"BACKEND_BASE_URL" envDefault:"https://localhost:7283"`
	BackendTimeoutMS int    `env:"BACKEND_TIMEOUT_MS" envDefault:"15000"`

	// geocodificação reversa (somente exibição)
	GeocodeBaseURL   string `env:"GEOCODE_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocodeProvider  string `env:"GEOCODE_PROVIDER" envDefault:"nominatim"` // nominatim, none
	GeocodeLanguage  string `env:"GEOCODE_LANGUAGE" envDefault:"pt-BR"`
	GeocodeTimeoutMS int    `env:"GEOCODE_TIMEOUT_MS" envDefault:"5000"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"ponto"`

	// JWT da sessão do BFF (o token do backend fica no Redis, nunca dentro do JWT)
	JWTSecret        string `env:"JWT_SECRET"` // obrigatório
	JWTExpireMinutes int    `env:"JWT_EXPIRE_MINUTES" envDefault:"30"`
	JWTRefreshDays   int    `env:"JWT_REFRESH_DAYS" envDefault:"7"`

	// sessão administrativa (cookie) e CSRF
	SessionSecret string `env:"SESSION_SECRET"` // obrigatório
	CSRFSecret    string `env:"CSRF_SECRET"`    // obrigatório
	AdminPassword string `env:"ADMIN_PASSWORD"` // obrigatório, substitui a senha fixa do front antigo

	// cerca virtual opcional do escritório; raio 0 desliga a checagem
	OfficeLatitude       float64 `env:"OFFICE_LATITUDE" envDefault:"0"`
	OfficeLongitude      float64 `env:"OFFICE_LONGITUDE" envDefault:"0"`
	GeofenceRadiusMeters float64 `env:"GEOFENCE_RADIUS_METERS" envDefault:"0"`

	// jornada padrão usada para atraso/saldo quando o backend não informa a escala
	ScheduleEntrada      string `env:"SCHEDULE_ENTRADA" envDefault:"08:00"`
	ScheduleInicioAlmoco string `env:"SCHEDULE_INICIO_ALMOCO" envDefault:"12:00"`
	ScheduleFimAlmoco    string `env:"SCHEDULE_FIM_ALMOCO" envDefault:"13:00"`
	ScheduleSaida        string `env:"SCHEDULE_SAIDA" envDefault:"17:00"`

	// logs
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// rate limit das rotas de autenticação
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"100"`

	// OpenTelemetry
	OTLPEndpoint   string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4317"`
	OTelSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"0.1"`

	// Snowflake, ids de correlação das solicitações de ajuste
	SnowflakeMachineID int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`

	// TTLs de cache: o modal de ajuste consome o cache de registros brutos
	PunchCacheTTLSeconds   int `env:"PUNCH_CACHE_TTL_SECONDS" envDefault:"120"`
	ProfileCacheTTLSeconds int `env:"PROFILE_CACHE_TTL_SECONDS" envDefault:"1800"`
}

func init() {

	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	if Cfg.GeocodeProvider != "nominatim" && Cfg.GeocodeProvider != "none" {
		log.Printf("WARN: unknown GEOCODE_PROVIDER %q, falling back to none", Cfg.GeocodeProvider)
		Cfg.GeocodeProvider = "none"
	}
}

// MustValidate aborta o processo quando falta configuração obrigatória.
// Chamado pelo entrypoint do servidor, nunca por init, para que binários de
// teste possam importar pacotes que dependem de Cfg.
func MustValidate() {
	if Cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	if Cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required")
	}

	if Cfg.CSRFSecret == "" {
		log.Fatal("CSRF_SECRET is required")
	}

	if Cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	if Cfg.BackendBaseURL == "" {
		log.Fatal("BACKEND_BASE_URL is required")
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
