package config

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	HTTPPort        string
	CORSOrigin      string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	JWTSecret       string
}

func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	// In all cases the default behavior should be for the docker compose setup
	defaults := map[string]interface{}{
		"http.port":        "3000",
		"http.cors_origin": "*",
		"mongo.uri":        "mongodb://localhost:27017",
		"mongo.database":   "finance-management",
		"mongo.collection": "personal-finance",
		"jwt.secret":       "testsecret",
	}

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	// FINANCE_MONGO_URI overrides mongo.uri, FINANCE_HTTP_PORT overrides http.port, etc.
	err := k.Load(env.Provider("FINANCE_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "FINANCE_"))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:        k.String("http.port"),
		CORSOrigin:      k.String("http.cors_origin"),
		MongoURI:        k.String("mongo.uri"),
		MongoDatabase:   k.String("mongo.database"),
		MongoCollection: k.String("mongo.collection"),
		JWTSecret:       k.String("jwt.secret"),
	}, nil
}
