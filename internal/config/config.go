package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string `json:"port"`
	DataFile    string `json:"dataFile"`    // restrictions.json
	CatalogsDir string `json:"catalogsDir"` // yaml-справочники
	DBURL       string `json:"dbUrl"`       // пусто = без Postgres
	AutoMigrate bool   `json:"autoMigrate"`
	Watch       bool   `json:"watch"` // перечитывать документ при изменении файла
	LogLevel    string `json:"logLevel"`
}

func def() Config {
	return Config{
		Port:        "8080",
		DataFile:    "data/restrictions.json",
		CatalogsDir: "reference/catalogs",
		DBURL:       "",
		AutoMigrate: false,
		Watch:       false,
		LogLevel:    "info",
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "1" || v == "true" || v == "yes" {
			return true
		}
		if v == "0" || v == "false" || v == "no" {
			return false
		}
	}
	return fallback
}

func parseBool(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "true" || s == "1" || s == "yes"
}

// fileEnvLayer: defaults -> JSON (если файл существует) -> ENV
func fileEnvLayer(jsonPath string) Config {
	cfg := def()

	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	cfg.Port = getenv("RODIZIO_PORT", cfg.Port)
	cfg.DataFile = getenv("RODIZIO_DATA_FILE", cfg.DataFile)
	cfg.CatalogsDir = getenv("RODIZIO_CATALOGS_DIR", cfg.CatalogsDir)
	cfg.DBURL = getenv("RODIZIO_DB_URL", cfg.DBURL)
	cfg.AutoMigrate = getenvBool("RODIZIO_AUTO_MIGRATE", cfg.AutoMigrate)
	cfg.Watch = getenvBool("RODIZIO_WATCH", cfg.Watch)
	cfg.LogLevel = getenv("RODIZIO_LOG_LEVEL", cfg.LogLevel)

	return cfg
}

// LoadWithPath читает JSON по указанному пути, потом применяет ENV и флаги.
func LoadWithPath(jsonPath string) Config {
	return loadWithArgs(jsonPath, os.Args[1:])
}

// loadWithArgs регистрирует флаги на отдельном FlagSet, а не на глобальном
// flag.CommandLine: повторный вызов (в том числе -config с другим файлом)
// не упирается в "flag redefined". При смене конфига перечитываем JSON+ENV,
// поверх кладём только явно заданные флаги.
func loadWithArgs(jsonPath string, args []string) Config {
	cfg := fileEnvLayer(jsonPath)

	fs := flag.NewFlagSet("rodizio", flag.ContinueOnError)
	configPath := fs.String("config", jsonPath, "Path to config JSON")
	fs.String("port", cfg.Port, "HTTP port")
	fs.String("data", cfg.DataFile, "Path to restrictions.json")
	fs.String("catalogs", cfg.CatalogsDir, "Path to catalogs directory")
	fs.String("db", cfg.DBURL, "Postgres URL (empty = in-memory only)")
	fs.String("auto-migrate", strconv.FormatBool(cfg.AutoMigrate), "Apply snapshot DDL on start (true/false)")
	fs.String("watch", strconv.FormatBool(cfg.Watch), "Reload document on file change (true/false)")
	fs.String("log-level", cfg.LogLevel, "Log level (debug/info/warn/error)")
	if err := fs.Parse(args); err != nil {
		return cfg
	}

	// Если через флаг передали другой конфиг — перечитаем JSON и ENV
	if *configPath != jsonPath {
		cfg = fileEnvLayer(*configPath)
	}

	// Незаданные флаги уже учтены слоями ниже — переносим только явные
	fs.Visit(func(f *flag.Flag) {
		v := strings.TrimSpace(f.Value.String())
		switch f.Name {
		case "port":
			cfg.Port = v
		case "data":
			cfg.DataFile = v
		case "catalogs":
			cfg.CatalogsDir = v
		case "db":
			cfg.DBURL = v
		case "auto-migrate":
			cfg.AutoMigrate = parseBool(v)
		case "watch":
			cfg.Watch = parseBool(v)
		case "log-level":
			cfg.LogLevel = v
		}
	})

	return cfg
}
