package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultUploadBodySize     = "30MB"

	defaultPaymentBaseURL      = "https://api-sandbox.ctechpay.com/student"
	defaultPaymentTimeout      = 30 * time.Second
	defaultPaymentPollInterval = 5 * time.Second
	defaultPaymentPollTimeout  = 2 * time.Minute
	// awaitResponseMargin leaves room to write the 504 after the last poll.
	awaitResponseMargin = 5 * time.Second

	defaultContractFee = "50"
	defaultRentDueDay  = 5

	defaultContractExpirySpec = "0 9 * * *"
	defaultRentReminderSpec   = "0 10 * * *"

	defaultMaxAttachments    = 5
	defaultMaxAttachmentSize = 5 << 20

	defaultResetTokenTTL = time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// UploadBodySize bounds multipart routes (tickets, reports).
		UploadBodySize string   `json:"uploadBodySize" yaml:"uploadBodySize"`
		AllowOrigins   []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts       struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Payment configures the CtechPay gateway client
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	Billing *BillingConfig `json:"billing" yaml:"billing"`

	// Scheduler holds cron specs for the reminder sweeps
	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Email configures the SES mailer. Nil disables outgoing email.
	Email *EmailConfig `json:"email" yaml:"email"`

	// Storage configures attachment storage
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// SeedAdmin is read by cmd/seedadmin only
	SeedAdmin *SeedAdminConfig `json:"seedAdmin" yaml:"seedAdmin"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	ResetTokenTTL     time.Duration `json:"resetTokenTTL" yaml:"resetTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// SlowQuery is the SQL duration logged as a warning; 0 uses the 200ms default.
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// PaymentConfig defines the payment gateway credentials and polling bounds
type PaymentConfig struct {
	BaseURL      string        `json:"baseUrl" yaml:"baseUrl"`
	APIToken     string        `json:"apiToken" yaml:"apiToken"`
	Registration string        `json:"registration" yaml:"registration"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	PollTimeout  time.Duration `json:"pollTimeout" yaml:"pollTimeout"`
}

// BillingConfig defines fee constants
type BillingConfig struct {
	// ContractFee is a decimal string so it survives env overrides unchanged
	ContractFee string `json:"contractFee" yaml:"contractFee"`
	RentDueDay  int    `json:"rentDueDay" yaml:"rentDueDay"`
	// FrontendURL is used to build payment redirect and password reset links
	FrontendURL string `json:"frontendUrl" yaml:"frontendUrl"`
}

// SchedulerConfig defines when the reminder sweeps run
type SchedulerConfig struct {
	Enabled            bool   `json:"enabled" yaml:"enabled"`
	Timezone           string `json:"timezone" yaml:"timezone"`
	ContractExpirySpec string `json:"contractExpirySpec" yaml:"contractExpirySpec"`
	RentReminderSpec   string `json:"rentReminderSpec" yaml:"rentReminderSpec"`
}

// EmailConfig defines the SES sender
type EmailConfig struct {
	Region string `json:"region" yaml:"region"`
	From   string `json:"from" yaml:"from"`
}

// StorageConfig defines where attachments are written and the upload limits
type StorageConfig struct {
	// BucketURL is a gocloud.dev URL, e.g. file:///var/uploads or s3://bucket?region=af-south-1
	BucketURL      string `json:"bucketUrl" yaml:"bucketUrl"`
	MaxFiles       int    `json:"maxFiles" yaml:"maxFiles"`
	MaxFileSize    int64  `json:"maxFileSize" yaml:"maxFileSize"`
	PublicBasePath string `json:"publicBasePath" yaml:"publicBasePath"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// PublicKey is handed to clients registering for web push
	PublicKey string `json:"publicKey" yaml:"publicKey"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// WorkerPort is where cmd/pushworker listens; 0 falls back to http.port.
	WorkerPort int `json:"workerPort" yaml:"workerPort"`
}

// MigrationConfig controls schema migrations on startup
type MigrationConfig struct {
	Auto bool `json:"auto" yaml:"auto"`
}

// MetricsConfig controls the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// SeedAdminConfig is the bootstrap admin account
type SeedAdminConfig struct {
	Username    string `json:"username" yaml:"username"`
	Email       string `json:"email" yaml:"email"`
	Password    string `json:"password" yaml:"password"`
	NationalID  string `json:"nationalId" yaml:"nationalId"`
	DateOfBirth string `json:"dateOfBirth" yaml:"dateOfBirth"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil fee or polling settings.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(cfg.HTTP.UploadBodySize) == "" {
		cfg.HTTP.UploadBodySize = defaultUploadBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.ResetTokenTTL <= 0 {
		cfg.Auth.ResetTokenTTL = defaultResetTokenTTL
	}

	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.BaseURL == "" {
		cfg.Payment.BaseURL = defaultPaymentBaseURL
	}
	if cfg.Payment.Timeout <= 0 {
		cfg.Payment.Timeout = defaultPaymentTimeout
	}
	if cfg.Payment.PollInterval <= 0 {
		cfg.Payment.PollInterval = defaultPaymentPollInterval
	}
	if cfg.Payment.PollTimeout <= 0 {
		cfg.Payment.PollTimeout = defaultPaymentPollTimeout
	}
	// The await endpoint holds the response for a whole poll plus one in-flight gateway call.
	// A zero write timeout means no deadline and is left alone.
	if minWrite := cfg.Payment.PollTimeout + cfg.Payment.Timeout + awaitResponseMargin; cfg.HTTP.Timeouts.WriteTimeout > 0 && cfg.HTTP.Timeouts.WriteTimeout < minWrite {
		cfg.HTTP.Timeouts.WriteTimeout = minWrite
	}

	if cfg.Billing == nil {
		cfg.Billing = &BillingConfig{}
	}
	if strings.TrimSpace(cfg.Billing.ContractFee) == "" {
		cfg.Billing.ContractFee = defaultContractFee
	}
	if cfg.Billing.RentDueDay < 1 || cfg.Billing.RentDueDay > 28 {
		cfg.Billing.RentDueDay = defaultRentDueDay
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{Enabled: true}
	}
	if cfg.Scheduler.ContractExpirySpec == "" {
		cfg.Scheduler.ContractExpirySpec = defaultContractExpirySpec
	}
	if cfg.Scheduler.RentReminderSpec == "" {
		cfg.Scheduler.RentReminderSpec = defaultRentReminderSpec
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.MaxFiles <= 0 {
		cfg.Storage.MaxFiles = defaultMaxAttachments
	}
	if cfg.Storage.MaxFileSize <= 0 {
		cfg.Storage.MaxFileSize = defaultMaxAttachmentSize
	}

	if cfg.Metrics != nil && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
