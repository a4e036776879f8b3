package config

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/redis/go-redis/v9"
)

// Config - Global variable to export
var Config AppConfig

// AppConfig defines
type AppConfig struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	Storage   StorageConfig   `koanf:"storage"`
	Minio     MinioConfig     `koanf:"minio"`
	GCS       GCSConfig       `koanf:"gcs"`
	Embedding EmbeddingConfig `koanf:"embedding"`
	Pipeline  PipelineConfig  `koanf:"pipeline"`
}

// ServerConfig defines HTTP server configurations
type ServerConfig struct {
	PublicPort int `koanf:"publicport" validate:"required"`
	HTTPS      struct {
		Cert string `koanf:"cert"`
		Key  string `koanf:"key"`
	}
	Debug bool `koanf:"debug"`
	CORS  struct {
		AllowOrigins []string `koanf:"alloworigins"`
	}
	// RequestTimeout bounds a single trigger invocation. Zero means no bound.
	RequestTimeout time.Duration `koanf:"requesttimeout"`
}

// DatabaseConfig related to database
type DatabaseConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	Version  uint   `koanf:"version"`
	TimeZone string `koanf:"timezone"`
	Pool     struct {
		IdleConnections int           `koanf:"idleconnections"`
		MaxConnections  int           `koanf:"maxconnections"`
		ConnLifeTime    time.Duration `koanf:"connlifetime"`
	}
}

// CacheConfig related to Redis
type CacheConfig struct {
	Redis struct {
		RedisOptions redis.Options `koanf:"redisoptions"`
	}
}

// StorageConfig selects the object storage backend holding document
// binaries.
type StorageConfig struct {
	Provider string `koanf:"provider" validate:"omitempty,oneof=minio gcs"`
	Bucket   string `koanf:"bucket" validate:"required"`
}

// MinioConfig is the MinIO connection configuration.
type MinioConfig struct {
	Host       string `koanf:"host"`
	Port       string `koanf:"port"`
	User       string `koanf:"user"`
	Password   string `koanf:"password"`
	Secure     bool   `koanf:"secure"`
	BucketName string `koanf:"bucketname"`
}

// GCSConfig defines the configuration for Google Cloud Storage as an object
// storage backend.
type GCSConfig struct {
	ProjectID string `koanf:"projectid"`
	Region    string `koanf:"region"`
	Bucket    string `koanf:"bucket"`
	SAKey     string `koanf:"sakey"` // JSON string of service account key
}

// EmbeddingConfig selects and configures the embedding service.
type EmbeddingConfig struct {
	Provider string `koanf:"provider" validate:"omitempty,oneof=gateway openai gemini"`
	Gateway  struct {
		Host    string        `koanf:"host"`
		Token   string        `koanf:"token"`
		Timeout time.Duration `koanf:"timeout"`
	}
	OpenAI struct {
		APIKey string `koanf:"apikey"`
		Model  string `koanf:"model"`
	}
	Gemini struct {
		APIKey     string `koanf:"apikey"`
		Model      string `koanf:"model"`
		Dimensions int32  `koanf:"dimensions"`
	}
}

// PipelineConfig holds the ingestion pipeline tunables.
type PipelineConfig struct {
	ChunkSize       int `koanf:"chunksize" validate:"gt=0"`
	ChunkOverlap    int `koanf:"chunkoverlap" validate:"gte=0,ltfield=ChunkSize"`
	EmbedBatchSize  int `koanf:"embedbatchsize" validate:"gt=0"`
	InsertBatchSize int `koanf:"insertbatchsize" validate:"gt=0"`
	Lock            struct {
		Enabled bool          `koanf:"enabled"`
		TTL     time.Duration `koanf:"ttl"`
	}
}

// Init - Assign global config to decoded config struct
func Init(filePath string) error {
	k := koanf.New(".")
	parser := yaml.Parser()

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		log.Fatal(err.Error())
	}

	if filePath != "" {
		if err := k.Load(file.Provider(filePath), parser); err != nil {
			log.Fatal(err.Error())
		}
	}

	if err := k.Load(env.ProviderWithValue("CFG_", ".", func(s string, v string) (string, any) {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CFG_")), "_", ".")
		if strings.Contains(v, ",") {
			return key, strings.Split(strings.TrimSpace(v), ",")
		}
		return key, v
	}), nil); err != nil {
		return err
	}

	if err := k.Unmarshal("", &Config); err != nil {
		return err
	}

	return ValidateConfig(&Config)
}

func defaults() map[string]any {
	return map[string]any{
		"server.publicport":           8080,
		"storage.provider":            "minio",
		"storage.bucket":              "knowledge-base",
		"embedding.provider":          "gateway",
		"embedding.gateway.timeout":   "60s",
		"embedding.openai.model":      "text-embedding-3-small",
		"embedding.gemini.model":      "gemini-embedding-001",
		"embedding.gemini.dimensions": 1536,
		"pipeline.chunksize":          2000,
		"pipeline.chunkoverlap":       200,
		"pipeline.embedbatchsize":     10,
		"pipeline.insertbatchsize":    50,
		"pipeline.lock.ttl":           "10m",
	}
}

// ValidateConfig is for custom validation rules for the configuration
func ValidateConfig(cfg *AppConfig) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	return nil
}

var defaultConfigPath = "config/config.yaml"

// ParseConfigFlag allows clients to specify the relative path to the file from
// which the configuration will be loaded.
func ParseConfigFlag() string {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("file", defaultConfigPath, "configuration file")
	_ = fs.Parse(os.Args[1:])

	return *configPath
}
