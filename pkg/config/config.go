package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Store    StoreConfig
	POS      POSConfig
	WhatsApp WhatsAppConfig
	PDF      PDFConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// StoreConfig configuración del almacén local.
type StoreConfig struct {
	Path string // archivo SQLite del almacén clave-valor
	Seed bool   // sembrar datos de ejemplo si los slots no existen
}

// POSConfig parámetros del punto de venta y del documento emitido.
type POSConfig struct {
	DueDays   int    // plazo de vencimiento por defecto de una venta
	StoreName string // razón social que aparece en la nota y en el mensaje
	StoreCity string // plaza de emisión del documento
}

// WhatsAppConfig integración de recordatorios de cobro.
type WhatsAppConfig struct {
	BaseURL string // servicio de deep links, por defecto https://wa.me
}

// PDFConfig salida de documentos generados.
type PDFConfig struct {
	OutputDir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, STORE_PATH, POS_DUE_DAYS, WHATSAPP_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "iwr-crediario"),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "./crediario.db"),
			Seed: getBool(v, "STORE_SEED", true),
		},
		POS: POSConfig{
			DueDays:   getInt(v, "POS_DUE_DAYS", 30),
			StoreName: getString(v, "POS_STORE_NAME", "IWR Lojas"),
			StoreCity: getString(v, "POS_STORE_CITY", "Matriz/SP"),
		},
		WhatsApp: WhatsAppConfig{
			BaseURL: getString(v, "WHATSAPP_BASE_URL", "https://wa.me"),
		},
		PDF: PDFConfig{
			OutputDir: getString(v, "PDF_OUTPUT_DIR", "./documentos"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			// Un valor malformado cae al default, nunca a 0.
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
