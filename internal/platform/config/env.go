package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ParseEnv は環境変数から target を読み込みます。
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// envOverrides は設定ファイルを上書きできる環境変数です。未設定の項目は無視します。
type envOverrides struct {
	ListenAddr    string `env:"KIOSK_LISTEN_ADDR"`
	StationID     string `env:"KIOSK_STATION_ID"`
	ResetDelay    string `env:"KIOSK_RESET_DELAY"`
	ClockTick     string `env:"KIOSK_CLOCK_TICK"`
	Authenticator string `env:"KIOSK_AUTHENTICATOR"`
	Storage       string `env:"KIOSK_STORAGE"`
	SQLitePath    string `env:"KIOSK_SQLITE_PATH"`
	DatabaseHost  string `env:"KIOSK_DB_HOST"`
	DatabasePort  int    `env:"KIOSK_DB_PORT"`
	DatabaseUser  string `env:"KIOSK_DB_USER"`
	DatabasePass  string `env:"KIOSK_DB_PASSWORD"`
	DatabaseName  string `env:"KIOSK_DB_NAME"`
	OTLPEndpoint  string `env:"KIOSK_OTEL_ENDPOINT"`
	OTelEnabled   *bool  `env:"KIOSK_OTEL_ENABLED"`
}

func (o envOverrides) apply(cfg *Config) error {
	setString(&cfg.Server.ListenAddr, o.ListenAddr)
	setString(&cfg.Kiosk.StationID, o.StationID)
	setString(&cfg.Kiosk.ResetDelayRaw, o.ResetDelay)
	setString(&cfg.Kiosk.ClockTickRaw, o.ClockTick)
	setString(&cfg.Kiosk.Authenticator, strings.ToLower(o.Authenticator))
	setString(&cfg.Kiosk.Storage, strings.ToLower(o.Storage))
	setString(&cfg.SQLite.Path, o.SQLitePath)
	setString(&cfg.Database.Host, o.DatabaseHost)
	setString(&cfg.Database.User, o.DatabaseUser)
	setString(&cfg.Database.Password, o.DatabasePass)
	setString(&cfg.Database.Name, o.DatabaseName)
	setString(&cfg.Telemetry.OTLPEndpoint, o.OTLPEndpoint)

	if o.DatabasePort < 0 {
		return fmt.Errorf("config: KIOSK_DB_PORT must not be negative")
	}
	if o.DatabasePort > 0 {
		cfg.Database.Port = o.DatabasePort
	}
	if o.OTelEnabled != nil {
		cfg.Telemetry.Enabled = *o.OTelEnabled
	}
	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
