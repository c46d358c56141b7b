package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// 認証方式とストレージの選択肢です。
const (
	AuthenticatorStub      = "stub"
	AuthenticatorDirectory = "directory"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

const (
	defaultStationID   = "KIOSK-001"
	defaultResetDelay  = 3 * time.Second
	defaultClockTick   = time.Second
	defaultSQLitePath  = "data/kiosk.db"
	defaultServiceName = "timeclock-kiosk"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Kiosk     KioskConfig     `yaml:"kiosk"`
	Database  DatabaseConfig  `yaml:"database"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// KioskConfig は端末の動作設定です。
type KioskConfig struct {
	StationID     string         `yaml:"station_id"`
	ResetDelay    time.Duration  `yaml:"-"`
	ClockTick     time.Duration  `yaml:"-"`
	ResetDelayRaw string         `yaml:"reset_delay"`
	ClockTickRaw  string         `yaml:"clock_tick"`
	Authenticator string         `yaml:"authenticator"`
	Storage       string         `yaml:"storage"`
	Employees     []EmployeeSeed `yaml:"employees"`
}

// EmployeeSeed は起動時に社員ディレクトリへ登録する社員です。
type EmployeeSeed struct {
	Code        string `yaml:"code"`
	CardNumber  string `yaml:"card_number"`
	DisplayName string `yaml:"display_name"`
	Status      string `yaml:"status"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// SQLiteConfig はオフライン端末用 SQLite の設定です。
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// TelemetryConfig はトレース送信の設定です。Endpoint が空なら無効です。
type TelemetryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	ServiceName  string `yaml:"service_name"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
// KIOSK_ で始まる環境変数が設定されていればファイルの値を上書きします。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	var overrides envOverrides
	if err := ParseEnv(&overrides); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := overrides.apply(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Kiosk.validateAndNormalize(); err != nil {
		return err
	}

	switch c.Kiosk.Storage {
	case StoragePostgres:
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	case StorageSQLite:
		if c.SQLite.Path == "" {
			c.SQLite.Path = defaultSQLitePath
		}
	}

	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = defaultServiceName
	}

	return nil
}

func (k *KioskConfig) validateAndNormalize() error {
	k.StationID = strings.TrimSpace(k.StationID)
	if k.StationID == "" {
		k.StationID = defaultStationID
	}

	delay, err := parseDurationAllowEmpty(k.ResetDelayRaw)
	if err != nil {
		return fmt.Errorf("config: kiosk.reset_delay: %w", err)
	}
	if delay < 0 {
		return fmt.Errorf("config: kiosk.reset_delay must not be negative")
	}
	if delay == 0 {
		delay = defaultResetDelay
	}
	k.ResetDelay = delay

	tick, err := parseDurationAllowEmpty(k.ClockTickRaw)
	if err != nil {
		return fmt.Errorf("config: kiosk.clock_tick: %w", err)
	}
	if tick < 0 {
		return fmt.Errorf("config: kiosk.clock_tick must not be negative")
	}
	if tick == 0 {
		tick = defaultClockTick
	}
	k.ClockTick = tick

	if k.Storage == "" {
		k.Storage = StorageMemory
	}
	switch k.Storage {
	case StorageMemory, StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf("config: kiosk.storage %q is not supported", k.Storage)
	}

	if k.Authenticator == "" {
		k.Authenticator = AuthenticatorStub
	}
	switch k.Authenticator {
	case AuthenticatorStub:
	case AuthenticatorDirectory:
		if k.Storage == StorageMemory {
			return fmt.Errorf("config: kiosk.authenticator %q requires postgres or sqlite storage", k.Authenticator)
		}
	default:
		return fmt.Errorf("config: kiosk.authenticator %q is not supported", k.Authenticator)
	}

	for i, e := range k.Employees {
		if strings.TrimSpace(e.Code) == "" {
			return fmt.Errorf("config: kiosk.employees[%d].code must be set", i)
		}
		if strings.TrimSpace(e.DisplayName) == "" {
			return fmt.Errorf("config: kiosk.employees[%d].display_name must be set", i)
		}
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// TracingEnabled はトレースを送信する設定なら true を返します。
func (t TelemetryConfig) TracingEnabled() bool {
	return t.Enabled && t.OTLPEndpoint != ""
}
