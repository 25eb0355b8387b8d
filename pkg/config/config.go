package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo). Todos los valores tienen default: una corrida sin
// configuración se comporta igual que siempre.
type Config struct {
	App    AppConfig
	DB     DBConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// DBConfig configuración del archivo SQLite.
type DBConfig struct {
	Path string
}

// ReportConfig rutas de exportación y umbral por defecto del reporte de stock bajo.
type ReportConfig struct {
	CSVPath           string
	PDFPath           string
	LowStockThreshold int64
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env). Las env vars tienen prioridad. Nombres esperados:
// ALMACEN_ENV, ALMACEN_DB_PATH, ALMACEN_CSV_PATH, ALMACEN_PDF_PATH,
// ALMACEN_LOW_STOCK_THRESHOLD, ALMACEN_LOG_LEVEL.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetEnvPrefix("ALMACEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("ENV", "development")
	v.SetDefault("NAME", "almacen")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_PATH", "almacen.db")
	v.SetDefault("CSV_PATH", "stock_report.csv")
	v.SetDefault("PDF_PATH", "stock_report.pdf")
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("ENV"),
			Name:     v.GetString("NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Path: v.GetString("DB_PATH"),
		},
		Report: ReportConfig{
			CSVPath:           v.GetString("CSV_PATH"),
			PDFPath:           v.GetString("PDF_PATH"),
			LowStockThreshold: v.GetInt64("LOW_STOCK_THRESHOLD"),
		},
	}
	return cfg, nil
}
