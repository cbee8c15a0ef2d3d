package config

import (
	"log/slog"
	"os"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"warehouse-api/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort                string
	AppName                string
	MongoURI               string
	MongoDBName            string
	RemoteLogHttpURI       string
	RemoteTraceRpcURI      string
	RemoteProfilingHttpURI string
}

// SafeConfig is the loggable view of Config; the Mongo URI carries
// credentials and stays out of it.
type SafeConfig struct {
	AppPort                string `json:"app_port"`
	AppName                string `json:"app_name"`
	MongoDBName            string `json:"mongo_db_name"`
	RemoteLogHttpURI       string `json:"remote_log_http_uri"`
	RemoteTraceRpcURI      string `json:"remote_trace_rpc_uri"`
	RemoteProfilingHttpURI string `json:"remote_profiling_http_uri"`
}

func (c *Config) ToSafeConfig() SafeConfig {
	return SafeConfig{
		AppPort:                c.AppPort,
		AppName:                c.AppName,
		MongoDBName:            c.MongoDBName,
		RemoteLogHttpURI:       c.RemoteLogHttpURI,
		RemoteTraceRpcURI:      c.RemoteTraceRpcURI,
		RemoteProfilingHttpURI: c.RemoteProfilingHttpURI,
	}
}

func toSnake(s string) string {
	var out strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && s[i-1] != '_' {
				out.WriteRune('_')
			}
			out.WriteRune(unicode.ToLower(r))
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// StructAttrs("data", cfg) ➜ []slog.Attr{ slog.String("data.app_port", "3001"), ... }
func StructAttrs(prefix string, s any) []slog.Attr {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	t := v.Type()

	attrs := make([]slog.Attr, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := prefix + "." + jsonKey(f)

		switch v.Field(i).Kind() {
		case reflect.String:
			attrs = append(attrs, slog.String(key, v.Field(i).String()))
		case reflect.Int, reflect.Int64, reflect.Int32:
			attrs = append(attrs, slog.Int64(key, v.Field(i).Int()))
		default:
			attrs = append(attrs, slog.Any(key, v.Field(i).Interface()))
		}
	}
	return attrs
}

// jsonKey prefers the `json:"..."` tag, falling back to snake_case.
func jsonKey(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		return strings.Split(tag, ",")[0]
	}
	return toSnake(f.Name)
}

var log = logger.Instance()
var (
	configInstance *Config
	configOnce     sync.Once
)

func Instance() *Config {
	configOnce.Do(func() {
		// Load .env file (optional)
		if err := godotenv.Load(); err != nil {
			log.Warn("No .env file found, using system environment variables")
		}

		configInstance = &Config{
			AppPort:                os.Getenv("APP_PORT"),
			AppName:                os.Getenv("APP_NAME"),
			MongoURI:               os.Getenv("MONGO_URI"),
			MongoDBName:            os.Getenv("MONGO_DB_NAME"),
			RemoteLogHttpURI:       os.Getenv("REMOTE_LOG_HTTP_URI"),
			RemoteTraceRpcURI:      os.Getenv("REMOTE_TRACE_RPC_URI"),
			RemoteProfilingHttpURI: os.Getenv("REMOTE_PROFILING_HTTP_URI"),
		}

		// Optional but recommended
		if configInstance.RemoteLogHttpURI == "" {
			log.Warn("Missing REMOTE_LOG_HTTP_URI will skip sending log")
		}
		if configInstance.RemoteTraceRpcURI == "" {
			log.Warn("Missing REMOTE_TRACE_RPC_URI will skip sending trace")
		}
		if configInstance.RemoteProfilingHttpURI == "" {
			log.Warn("Missing REMOTE_PROFILING_HTTP_URI will skip sending profiling")
		}

		// Validate required env
		var missing []string
		if configInstance.AppPort == "" {
			missing = append(missing, "APP_PORT")
		}
		if configInstance.AppName == "" {
			missing = append(missing, "APP_NAME")
		}
		if configInstance.MongoURI == "" {
			missing = append(missing, "MONGO_URI")
		}
		if configInstance.MongoDBName == "" {
			missing = append(missing, "MONGO_DB_NAME")
		}

		if len(missing) > 0 {
			log.Error("Missing required environment variables", slog.Any("missing", missing))
			os.Exit(1)
		}

		attrs := StructAttrs("data", configInstance.ToSafeConfig())
		anyAttrs := make([]any, len(attrs))
		for i, a := range attrs {
			anyAttrs[i] = a
		}
		log.Info("Configuration loaded successfully", anyAttrs...)
	})

	return configInstance
}
