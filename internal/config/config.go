package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	LowStockCheck LowStockCheck `mapstructure:",squash"`
}

type App struct {
	LogLevel         string `mapstructure:"log_level"`
	MigrateOnStartup bool   `mapstructure:"migrate_on_startup"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
	SSLMode  string `mapstructure:"database_ssl_mode"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	// AdminKey es la clave en texto plano (solo local); AdminKeyHash es el
	// hash bcrypt preferido en producción. Con ambos presentes gana el hash.
	AdminKey     string `mapstructure:"admin_access_key"`
	AdminKeyHash string `mapstructure:"admin_access_key_hash"`
}

type LowStockCheck struct {
	CronSchedule string `mapstructure:"low_stock_check_cron"`
	Enabled      bool   `mapstructure:"low_stock_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_SSL_MODE", "require")

	viper.SetDefault("AUTH_SECRET", "clave_super_secreta_local")
	viper.SetDefault("ADMIN_ACCESS_KEY", "")
	viper.SetDefault("ADMIN_ACCESS_KEY_HASH", "")

	viper.SetDefault("LOW_STOCK_CHECK_CRON", "0 7 * * *") // Todos los días a las 7h
	viper.SetDefault("LOW_STOCK_CHECK_ENABLED", false)

	viper.SetDefault("MIGRATE_ON_STARTUP", true)
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Intentar leer el .env con Viper (opcional, ya lo cargó godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	} else {
		logrus.Info("Archivo .env leído por Viper con éxito")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// Validate exige las credenciales de base de datos: sin ellas el proceso no
// debe atender tráfico.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL es obligatoria")
	}
	if c.Database.Password == "" {
		return errors.New("DATABASE_PASSWORD es obligatoria")
	}
	return nil
}

// Función auxiliar para cargar el archivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	// Probar varias ubicaciones posibles para el archivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Archivo .env cargado con éxito desde:", location)
			return
		}
	}

	logrus.Warn("No se pudo cargar el archivo .env de ninguna ubicación conocida")
}
