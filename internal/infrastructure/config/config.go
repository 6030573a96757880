package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	MpesaSandboxURL    = "https://sandbox.safaricom.co.ke"
	MpesaProductionURL = "https://api.safaricom.co.ke"

	// CallbackPath is where Daraja posts STK results. It is appended to BASE_URL.
	CallbackPath = "/v1/payments/mpesa/callback"

	defaultCORSOrigin = "http://localhost:3000"
)

// Config is everything the service reads from the environment. It is built
// once in main and handed to constructors; nothing else reads credentials.
type Config struct {
	App      AppConfig
	Mpesa    MpesaConfig
	DynamoDB DynamoDBConfig
	Sheets   SheetsConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Port    string
	BaseURL string
}

type MpesaConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CountryCode    string
	HTTPTimeout    time.Duration
	Mock           bool
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	PaymentsTable   string
	CampaignsTable  string
}

type SheetsConfig struct {
	SpreadsheetID   string
	Range           string
	CredentialsFile string
}

func (c SheetsConfig) Enabled() bool {
	return c.SpreadsheetID != ""
}

type SMTPConfig struct {
	Host   string
	Port   int
	User   string
	Pass   string
	Sender string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Sender != ""
}

type AuthConfig struct {
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	TokenTTL          time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads the configuration from environment variables, applying
// local-friendly defaults.
func Load() Config {
	mpesaBase := getenvDefault("MPESA_BASE_URL", "")
	if mpesaBase == "" {
		mpesaBase = MpesaSandboxURL
		if strings.EqualFold(os.Getenv("MPESA_ENV"), "production") {
			mpesaBase = MpesaProductionURL
		}
	}

	return Config{
		App: AppConfig{
			Port:    getenvDefault("PORT", "8080"),
			BaseURL: strings.TrimRight(getenvDefault("BASE_URL", "http://localhost:8080"), "/"),
		},
		Mpesa: MpesaConfig{
			BaseURL:        strings.TrimRight(mpesaBase, "/"),
			ConsumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
			ConsumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
			ShortCode:      os.Getenv("MPESA_SHORTCODE"),
			Passkey:        os.Getenv("MPESA_PASSKEY"),
			CountryCode:    getenvDefault("MPESA_COUNTRY_CODE", "254"),
			HTTPTimeout:    getDuration("MPESA_HTTP_TIMEOUT", 30*time.Second),
			Mock:           IsTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || IsTruthy(os.Getenv("MPESA_MOCK")),
		},
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			PaymentsTable:   getenvDefault("PAYMENTS_TABLE", "payments"),
			CampaignsTable:  getenvDefault("CAMPAIGNS_TABLE", "campaigns"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"),
			Range:           getenvDefault("GOOGLE_SHEETS_RANGE", "Payments!A1"),
			CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
		SMTP: SMTPConfig{
			Host:   os.Getenv("SMTP_HOST"),
			Port:   getInt("SMTP_PORT", 465),
			User:   os.Getenv("SMTP_USER"),
			Pass:   os.Getenv("SMTP_PASS"),
			Sender: os.Getenv("SMTP_SENDER"),
		},
		Auth: AuthConfig{
			JWTSecret:         os.Getenv("JWT_SECRET"),
			AdminEmail:        os.Getenv("ADMIN_EMAIL"),
			AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			TokenTTL:          getDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: corsOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
	}
}

// CallbackURL is the public URL Daraja will call with the STK result.
func (c Config) CallbackURL() string {
	return c.App.BaseURL + CallbackPath
}

// Validate reports settings the service cannot run without.
func (c Config) Validate() error {
	var errs []error
	if !c.Mpesa.Mock {
		for name, v := range map[string]string{
			"MPESA_CONSUMER_KEY":    c.Mpesa.ConsumerKey,
			"MPESA_CONSUMER_SECRET": c.Mpesa.ConsumerSecret,
			"MPESA_SHORTCODE":       c.Mpesa.ShortCode,
			"MPESA_PASSKEY":         c.Mpesa.Passkey,
		} {
			if v == "" {
				errs = append(errs, fmt.Errorf("missing %s", name))
			}
		}
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("missing JWT_SECRET"))
	}
	if !strings.HasPrefix(c.App.BaseURL, "http://") && !strings.HasPrefix(c.App.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("invalid BASE_URL %q", c.App.BaseURL))
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS has no origins"))
	}
	return errors.Join(errs...)
}

// IsTruthy accepts the same switch spellings the mock flags always have.
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// corsOrigins parses CORS_ALLOWED_ORIGINS. A value with no usable entries
// (",", " , ") falls back to the local frontend.
func corsOrigins(v string) []string {
	if origins := splitList(v); len(origins) > 0 {
		return origins
	}
	return []string{defaultCORSOrigin}
}
