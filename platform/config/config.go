// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Email provider identifiers accepted by EMAIL_PROVIDER.
const (
	EmailProviderLog   = "log"
	EmailProviderBrevo = "brevo"
	EmailProviderSMTP  = "smtp"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	// GetTrustedProxies lists proxy IPs/CIDRs whose forwarding headers are
	// honoured. Empty means the socket address is the client address.
	GetTrustedProxies() []string
}

// JWTConfig provides JWT validation settings for the admin middleware.
type JWTConfig interface {
	GetAdminJWTSecret() string
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailProvider() string
	GetBrevoAPIKey() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// SMTPConfig provides settings for direct SMTP delivery.
type SMTPConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
}

// MailerConfig combines everything the email sender factory needs.
type MailerConfig interface {
	EmailConfig
	SMTPConfig
}

// ContactConfig provides settings for the contact form module.
type ContactConfig interface {
	GetContactNotifyAddress() string
	GetContactRateLimitPerMinute() int
	GetContactFollowUpDelay() time.Duration
	GetPhoneDefaultRegion() string
	GetInboxRetention() time.Duration
}

// RedisConfig provides Redis connection settings.
type RedisConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	IsRedisEnabled() bool
}

// SchedulerConfig provides settings for the asynq scheduler.
type SchedulerConfig interface {
	RedisConfig
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// ContentConfig provides settings for the content catalogs.
type ContentConfig interface {
	GetBlogManifestPath() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                       string
	HTTPAddr                  string
	CORSAllowAll              bool
	CORSOrigins               []string
	CORSAllowCreds            bool
	TrustedProxies            []string
	AdminJWTSecret            string
	EmailProvider             string
	BrevoAPIKey               string
	EmailFromName             string
	EmailFromAddress          string
	SMTPHost                  string
	SMTPPort                  int
	SMTPUsername              string
	SMTPPassword              string
	ContactNotifyAddress      string
	ContactRateLimitPerMinute int
	ContactFollowUpDelay      time.Duration
	PhoneDefaultRegion        string
	InboxRetention            time.Duration
	RedisURL                  string
	RedisTLSInsecure          bool
	AsynqQueueName            string
	AsynqConcurrency          int
	BlogManifestPath          string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string         { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool       { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string    { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool     { return c.CORSAllowCreds }
func (c *Config) GetTrustedProxies() []string { return c.TrustedProxies }

// JWTConfig implementation
func (c *Config) GetAdminJWTSecret() string { return c.AdminJWTSecret }

// EmailConfig implementation
func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetBrevoAPIKey() string      { return c.BrevoAPIKey }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// SMTPConfig implementation
func (c *Config) GetSMTPHost() string     { return c.SMTPHost }
func (c *Config) GetSMTPPort() int        { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string { return c.SMTPPassword }

// ContactConfig implementation
func (c *Config) GetContactNotifyAddress() string        { return c.ContactNotifyAddress }
func (c *Config) GetContactRateLimitPerMinute() int      { return c.ContactRateLimitPerMinute }
func (c *Config) GetContactFollowUpDelay() time.Duration { return c.ContactFollowUpDelay }
func (c *Config) GetPhoneDefaultRegion() string          { return c.PhoneDefaultRegion }
func (c *Config) GetInboxRetention() time.Duration       { return c.InboxRetention }

// RedisConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) IsRedisEnabled() bool      { return c.RedisURL != "" }

// SchedulerConfig implementation
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// ContentConfig implementation
func (c *Config) GetBlogManifestPath() string { return c.BlogManifestPath }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                       getEnv("APP_ENV", "development"),
		HTTPAddr:                  getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:              corsAllowAll,
		CORSOrigins:               corsOrigins,
		CORSAllowCreds:            strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		TrustedProxies:            splitCSV(getEnv("TRUSTED_PROXIES", "")),
		AdminJWTSecret:            getEnv("ADMIN_JWT_SECRET", ""),
		EmailProvider:             strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", EmailProviderLog))),
		BrevoAPIKey:               getEnv("BREVO_API_KEY", ""),
		EmailFromName:             getEnv("EMAIL_FROM_NAME", "AI Consulting"),
		EmailFromAddress:          getEnv("EMAIL_FROM_ADDRESS", ""),
		SMTPHost:                  getEnv("SMTP_HOST", ""),
		SMTPPort:                  mustInt(getEnv("SMTP_PORT", "587"), 587),
		SMTPUsername:              getEnv("SMTP_USERNAME", ""),
		SMTPPassword:              getEnv("SMTP_PASSWORD", ""),
		ContactNotifyAddress:      getEnv("CONTACT_NOTIFY_ADDRESS", ""),
		ContactRateLimitPerMinute: mustInt(getEnv("CONTACT_RATE_LIMIT_PER_MINUTE", "5"), 5),
		ContactFollowUpDelay:      mustDuration(getEnv("CONTACT_FOLLOWUP_DELAY", "0")),
		PhoneDefaultRegion:        strings.ToUpper(getEnv("PHONE_DEFAULT_REGION", "US")),
		InboxRetention:            mustDuration(getEnv("INBOX_RETENTION", "2160h")),
		RedisURL:                  getEnv("REDIS_URL", ""),
		RedisTLSInsecure:          strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:            getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:          mustInt(getEnv("ASYNQ_CONCURRENCY", "5"), 5),
		BlogManifestPath:          getEnv("BLOG_MANIFEST_PATH", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.EmailProvider {
	case EmailProviderLog:
	case EmailProviderBrevo:
		if c.BrevoAPIKey == "" {
			return fmt.Errorf("BREVO_API_KEY is required when EMAIL_PROVIDER is brevo")
		}
	case EmailProviderSMTP:
		if c.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required when EMAIL_PROVIDER is smtp")
		}
	default:
		return fmt.Errorf("unsupported EMAIL_PROVIDER %q", c.EmailProvider)
	}

	if c.EmailProvider != EmailProviderLog {
		if c.EmailFromAddress == "" {
			return fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
		}
		if c.ContactNotifyAddress == "" {
			return fmt.Errorf("CONTACT_NOTIFY_ADDRESS is required when email is enabled")
		}
	}
	if c.CORSAllowAll && c.CORSAllowCreds {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	for _, proxy := range c.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}
	if c.ContactRateLimitPerMinute < 1 {
		return fmt.Errorf("CONTACT_RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string, fallback int) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func validProxy(value string) bool {
	if strings.Contains(value, "/") {
		_, err := netip.ParsePrefix(value)
		return err == nil
	}
	_, err := netip.ParseAddr(value)
	return err == nil
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
