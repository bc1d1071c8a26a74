package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa de revfx.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
}

// ColumnsConfig define cómo se llaman las columnas de cada producto en la tabla de entrada.
type ColumnsConfig struct {
	PricePrefix    string `yaml:"price_prefix"`    // price_<producto>
	QuantityPrefix string `yaml:"quantity_prefix"` // quantity_<producto>
}

// ReportConfig controla el formato del presenter de consola.
type ReportConfig struct {
	Decimals   *int   `yaml:"decimals"`    // nil = default; 0 es válido
	TimeLayout string `yaml:"time_layout"` // layout de time.Format, vacío = automático
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// Default devuelve la configuración por defecto sin leer archivos ni entorno.
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// ReportDecimals devuelve los decimales del reporte ya resueltos.
func (c *Config) ReportDecimals() int {
	if c.Report.Decimals == nil {
		return defaultDecimals
	}
	return *c.Report.Decimals
}

// NewLogger crea un *slog.Logger según la configuración, escribiendo en w.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

const defaultDecimals = 2

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("REVFX_PRICE_PREFIX"); v != "" {
		cfg.Columns.PricePrefix = v
	}
	if v := os.Getenv("REVFX_QUANTITY_PREFIX"); v != "" {
		cfg.Columns.QuantityPrefix = v
	}
	if v := os.Getenv("REVFX_DECIMALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REVFX_DECIMALS=%q: %w", v, err)
		}
		cfg.Report.Decimals = &n
	}
	return nil
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Columns.PricePrefix == "" {
		cfg.Columns.PricePrefix = "price_"
	}
	if cfg.Columns.QuantityPrefix == "" {
		cfg.Columns.QuantityPrefix = "quantity_"
	}
	if cfg.Report.Decimals == nil || *cfg.Report.Decimals < 0 {
		n := defaultDecimals
		cfg.Report.Decimals = &n
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
