package models

import "time"

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// JWT
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiresIn time.Duration `mapstructure:"jwt_expires_in"`

	// AWS
	AWSRegion           string `mapstructure:"aws_region"`
	AWSAccessKeyID      string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey  string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint    string `mapstructure:"dynamodb_endpoint"`
	DynamoDBTablePrefix string `mapstructure:"dynamodb_table_prefix"`

	// Email / SMTP
	EmailUser string `mapstructure:"email_user"`
	EmailPass string `mapstructure:"email_pass"`
	SMTPHost  string `mapstructure:"smtp_host"`
	SMTPPort  int    `mapstructure:"smtp_port"`

	// Admin workflows
	SuperAdminEmail string `mapstructure:"super_admin_email"`
	DashboardURL    string `mapstructure:"dashboard_url"`

	// Who may provision organization admins: "super_admin" or
	// "org_admin_or_super_admin". The integrator picks this explicitly.
	AdminProvisioningPolicy string `mapstructure:"admin_provisioning_policy"`

	// Verification
	OTPExpiry time.Duration `mapstructure:"otp_expiry"`

	// Public link reconciler
	ReconcilerCronSchedule string `mapstructure:"reconciler_cron_schedule"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Base Path
	BasePath string `mapstructure:"basePath"`

	Tables []string `mapstructure:"tables"`
}
