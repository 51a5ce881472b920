package main

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-31"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !strings.Contains(output, "v1.0.0") ||
		!strings.Contains(output, "abcd1234") ||
		!strings.Contains(output, "2026-08-31") {
		t.Errorf("unexpected build info output: %s", output)
	}
}

// ----------------- Tests for parseConfig -----------------

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExp,
		tokenSecretKey, tokenCacheTTL,
		err := parseConfig("does-not-exist.env")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %s %s %s", appHost, appPort, logLevel)
	}
	if pgHost != "localhost" || pgPort != 5432 || pgUser != "user" || pgPassword != "password" || pgDB != "database" {
		t.Errorf("unexpected postgres config: %s %d %s %s %s", pgHost, pgPort, pgUser, pgPassword, pgDB)
	}
	if pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres pool config: %d %d", pgMaxOpenConns, pgMaxIdleConns)
	}
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPassword != "" {
		t.Errorf("unexpected redis config: %s %d %d %q", redisHost, redisPort, redisDB, redisPassword)
	}
	if redisPoolSize != 10 || redisMinIdleConns != 2 {
		t.Errorf("unexpected redis pool config: %d %d", redisPoolSize, redisMinIdleConns)
	}
	if len(kafkaBrokers) != 0 || kafkaTopic != "ledger-events" {
		t.Errorf("unexpected kafka config: %v %s", kafkaBrokers, kafkaTopic)
	}
	if jwtSecret != "my_super_secret_key" || jwtExp != 3600 {
		t.Errorf("unexpected jwt config: %s %d", jwtSecret, jwtExp)
	}
	if tokenSecretKey != "" || tokenCacheTTL != 300 {
		t.Errorf("unexpected token config: %q %d", tokenSecretKey, tokenCacheTTL)
	}
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "0.0.0.0")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	os.Setenv("KAFKA_TOPIC", "events")
	os.Setenv("LOYALTY_SECRET_KEY", "sk-live")
	os.Setenv("TOKEN_CACHE_TTL_SECOND", "60")
	defer resetEnv()

	appHost, appPort, logLevel,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		kafkaBrokers, kafkaTopic,
		_, _,
		tokenSecretKey, tokenCacheTTL,
		err := parseConfig("does-not-exist.env")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appHost != "0.0.0.0" || appPort != "9090" || logLevel != "debug" {
		t.Errorf("unexpected app config: %s %s %s", appHost, appPort, logLevel)
	}
	if len(kafkaBrokers) != 2 || kafkaBrokers[0] != "kafka1:9092" || kafkaBrokers[1] != "kafka2:9092" {
		t.Errorf("unexpected kafka brokers: %v", kafkaBrokers)
	}
	if kafkaTopic != "events" {
		t.Errorf("unexpected kafka topic: %s", kafkaTopic)
	}
	if tokenSecretKey != "sk-live" || tokenCacheTTL != 60 {
		t.Errorf("unexpected token config: %q %d", tokenSecretKey, tokenCacheTTL)
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	_, _, _,
		_, _, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		_, _,
		_, _,
		_, _,
		err := parseConfig("does-not-exist.env")

	if err == nil {
		t.Fatal("expected error for invalid POSTGRES_PORT")
	}
}
