package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/notenest/prod/"

// Config carries everything main needs to wire the server. Values come
// from the environment: a local .env in development, SSM Parameter
// Store in production.
type Config struct {
	HTTPAddr string

	// DBDriver selects the primary store: "mysql" or "sqlite".
	DBDriver   string
	MySQLDSN   string
	SQLitePath string

	SurrealURL  string
	SurrealUser string
	SurrealPass string
	SurrealNS   string
	SurrealDB   string

	S3Region string
	S3Bucket string

	MirrorBuffer int
}

// Load populates the environment and reads the config out of it. In
// production (GO_ENV=production) parameters are pulled from SSM; any
// other environment loads a .env file when one exists.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") == "production" {
		if err := loadProdEnv(); err != nil {
			return nil, err
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":7070"),
		DBDriver:     getenv("DB_DRIVER", "sqlite"),
		SQLitePath:   getenv("SQLITE_PATH", "notenest.db"),
		SurrealURL:   getenv("SURREAL_URL", "ws://localhost:8000/rpc"),
		SurrealUser:  getenv("SURREAL_USER", "root"),
		SurrealPass:  getenv("SURREAL_PASS", "root"),
		SurrealNS:    getenv("SURREAL_NS", "notenest"),
		SurrealDB:    getenv("SURREAL_DB", "notenest"),
		S3Region:     getenv("AWS_S3_REGION", "us-east-2"),
		S3Bucket:     getenv("S3_BUCKET_NAME", "notenest-attachments"),
		MirrorBuffer: getenvInt("MIRROR_BUFFER", 256),
	}

	cfg.MySQLDSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		getenv("DB_USER", "root"),
		getenv("DB_PASSWORD", ""),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "3306"),
		getenv("DB_NAME", "notenest"),
	)
	return cfg, nil
}

// DSN returns the DSN matching the selected driver.
func (c *Config) DSN() string {
	if c.DBDriver == "mysql" {
		return c.MySQLDSN
	}
	return c.SQLitePath
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("invalid integer for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func loadProdEnv() error {
	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(getenv("AWS_S3_REGION", "us-east-2")))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("unable to load prod environment: %w", err)
	}

	prefixLength := len(envVarsPrefix)
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		if enverr := os.Setenv(key, *param.Value); enverr != nil {
			return fmt.Errorf("unable to set environment variable: %w", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
	return nil
}
