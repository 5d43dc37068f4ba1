package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort          string        `mapstructure:"SERVER_PORT"`
	GrpcPort            string        `mapstructure:"GRPC_PORT"`
	EngineGrpcAddr      string        `mapstructure:"ENGINE_GRPC_ADDR"`
	RedisUrl            string        `mapstructure:"REDIS_URL"`
	MongoUri            string        `mapstructure:"MONGO_URI"`
	MongoDatabase       string        `mapstructure:"MONGO_DATABASE"`
	IsLocalCors         bool          `mapstructure:"LOCAL_CORS"`
	CorsOrigin          string        `mapstructure:"CORS_ORIGIN"`
	EngineMaxDepth      int           `mapstructure:"ENGINE_MAX_DEPTH"`
	EnginePruning       bool          `mapstructure:"ENGINE_PRUNING"`
	EngineHeuristic     bool          `mapstructure:"ENGINE_HEURISTIC"`
	EngineTimeBudget    time.Duration `mapstructure:"ENGINE_TIME_BUDGET"`
	EngineMaxConcurrent int64         `mapstructure:"ENGINE_MAX_CONCURRENT"`
	MoveCacheTTL        time.Duration `mapstructure:"MOVE_CACHE_TTL"`
	GameMaxMoves        int           `mapstructure:"GAME_MAX_MOVES"`
	LeaderboardLimit    int           `mapstructure:"LEADERBOARD_LIMIT"`
}

var defaults = map[string]any{
	"SERVER_PORT":           "8080",
	"GRPC_PORT":             "8082",
	"ENGINE_GRPC_ADDR":      "",
	"REDIS_URL":             "localhost:6379",
	"MONGO_URI":             "mongodb://localhost:27017",
	"MONGO_DATABASE":        "infinite_ttt",
	"LOCAL_CORS":            false,
	"CORS_ORIGIN":           "http://localhost:5173",
	"ENGINE_MAX_DEPTH":      6,
	"ENGINE_PRUNING":        true,
	"ENGINE_HEURISTIC":      false,
	"ENGINE_TIME_BUDGET":    "2s",
	"ENGINE_MAX_CONCURRENT": 8,
	"MOVE_CACHE_TTL":        "24h",
	"GAME_MAX_MOVES":        60,
	"LEADERBOARD_LIMIT":     10,
}

// Setup reads cfgPath (a .env file) on top of the defaults. Environment
// variables win over both. A missing file is not an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	v.SetConfigFile(cfgPath)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
