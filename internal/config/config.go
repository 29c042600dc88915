package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/league-simulator/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string

	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	LogLevel  logging.Level
	LogFormat string

	StorageDriver string
	DBURL         string

	SimulationSeed    int64
	SimulationWorkers int
	PredictionRuns    int
	PredictionWorkers int

	BaseHomeMean float64
	BaseAwayMean float64
	MaxGoalMean  float64

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := getEnvAsDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	storageDriver := strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory))
	switch storageDriver {
	case StorageMemory, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s",
			storageDriver, StorageMemory, StoragePostgres)
	}

	dbURL := getEnv("DATABASE_URL", "")
	if storageDriver == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
	}

	seed, err := getEnvAsInt64("SIMULATION_SEED", time.Now().UnixNano())
	if err != nil {
		return Config{}, fmt.Errorf("parse SIMULATION_SEED: %w", err)
	}
	workers, err := getEnvAsInt("SIMULATION_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SIMULATION_WORKERS: %w", err)
	}
	if workers < 1 {
		return Config{}, fmt.Errorf("SIMULATION_WORKERS must be >= 1, got %d", workers)
	}

	predictionRuns, err := getEnvAsInt("PREDICTION_RUNS", 1000)
	if err != nil {
		return Config{}, fmt.Errorf("parse PREDICTION_RUNS: %w", err)
	}
	predictionWorkers, err := getEnvAsInt("PREDICTION_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse PREDICTION_WORKERS: %w", err)
	}

	baseHomeMean, err := getEnvAsFloat("ENGINE_BASE_HOME_MEAN", 1.7)
	if err != nil {
		return Config{}, fmt.Errorf("parse ENGINE_BASE_HOME_MEAN: %w", err)
	}
	baseAwayMean, err := getEnvAsFloat("ENGINE_BASE_AWAY_MEAN", 1.2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ENGINE_BASE_AWAY_MEAN: %w", err)
	}
	maxGoalMean, err := getEnvAsFloat("ENGINE_MAX_GOAL_MEAN", 3.0)
	if err != nil {
		return Config{}, fmt.Errorf("parse ENGINE_MAX_GOAL_MEAN: %w", err)
	}

	pprofEnabled, err := getEnvAsBool("PPROF_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	uptraceEnabled, err := getEnvAsBool("UPTRACE_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := getEnvAsBool("PYROSCOPE_ENABLED", false)
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeAddr := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeAddr == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}

	serviceName := getEnv("SERVICE_NAME", "league-simulator")

	return Config{
		AppEnv:         appEnv,
		ServiceName:    serviceName,
		ServiceVersion: getEnv("SERVICE_VERSION", "dev"),

		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		LogLevel:  logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		StorageDriver: storageDriver,
		DBURL:         dbURL,

		SimulationSeed:    seed,
		SimulationWorkers: workers,
		PredictionRuns:    predictionRuns,
		PredictionWorkers: predictionWorkers,

		BaseHomeMean: baseHomeMean,
		BaseAwayMean: baseAwayMean,
		MaxGoalMean:  maxGoalMean,

		PprofEnabled: pprofEnabled,
		PprofAddr:    getEnv("PPROF_ADDR", "localhost:6060"),

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeAddr,
		PyroscopeAppName:       getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:     getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeUploadRate:    pyroscopeUploadRate,
	}, nil
}

func getEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func getEnvAsInt64(key string, fallback int64) (int64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseInt(value, 10, 64)
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseBool(value)
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return time.ParseDuration(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
