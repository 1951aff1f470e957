package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_URI_EACON", "mongodb://eacon:27017/")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	if cfg.StoreDriver != DriverPostgres {
		t.Errorf("driver: got %q", cfg.StoreDriver)
	}
	if cfg.JWTTTL != 15*time.Minute {
		t.Errorf("ttl: got %v", cfg.JWTTTL)
	}
	if cfg.MongoURI != "mongodb://eacon:27017/" {
		t.Errorf("mongo uri fallback: got %q", cfg.MongoURI)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("cors: got %v", cfg.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("SERVER_PORT", "9000")

	cfg := Load()

	if cfg.StoreDriver != DriverMemory {
		t.Errorf("driver: got %q", cfg.StoreDriver)
	}
	if cfg.JWTTTL != time.Hour {
		t.Errorf("ttl: got %v", cfg.JWTTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("cors: got %v", cfg.CORSOrigins)
	}
	if cfg.Addr() != ":9000" {
		t.Errorf("addr: got %q", cfg.Addr())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{StoreDriver: DriverMongo, JWTTTL: time.Minute, JWTSecret: "s"}, false},
		{"unknown driver", Config{StoreDriver: "redis", JWTTTL: time.Minute}, true},
		{"zero ttl", Config{StoreDriver: DriverMemory}, true},
		{"default secret in production", Config{Env: "production", StoreDriver: DriverMemory, JWTTTL: time.Minute, JWTSecret: defaultSecret}, true},
		{"default secret in development", Config{StoreDriver: DriverMemory, JWTTTL: time.Minute, JWTSecret: defaultSecret}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
