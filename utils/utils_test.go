package utils

import (
	"regexp"
	"testing"
	"time"

	"tickl-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotEmpty(t, cfg.AppName)
	assert.NotEmpty(t, cfg.AppPort)
	assert.NotEmpty(t, cfg.DynamoDBTablePrefix)
	assert.Equal(t, 15*time.Minute, cfg.OTPExpiry)
	assert.Contains(t, []string{"super_admin", "org_admin_or_super_admin"}, cfg.AdminProvisioningPolicy)
	assert.Contains(t, cfg.Tables, "organizations")
	assert.Contains(t, cfg.Tables, "public_links")
}

func TestValidateRejectsUnknownPolicy(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	cfg.AdminProvisioningPolicy = "everyone"
	err = validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "admin_provisioning_policy")
}

func TestGenerateOTP(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9][0-9]{3}$`)
	for i := 0; i < 200; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 4)
		assert.Regexp(t, pattern, otp)
		assert.GreaterOrEqual(t, otp, "1000")
		assert.LessOrEqual(t, otp, "9999")
	}
}

func TestGeneratePublicLinkID(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-zA-Z0-9]{10}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GeneratePublicLinkID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate link id %s", id)
		seen[id] = true
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"bob@acme.com",
		"bob.smith+tag@sub.acme.co",
		"B_ob%99@acme-corp.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %s to be valid", email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@acme.com",
		"bob@",
		"bob@acme",
		"bob acme@acme.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %s to be invalid", email)
	}
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "acme.com", EmailDomain("bob@acme.com"))
	assert.Equal(t, "acme.com", EmailDomain("bob@ACME.Com"))
	assert.Equal(t, "acme.com", EmailDomain(`"weird@local"@acme.com`))
	assert.Equal(t, "", EmailDomain("no-at-sign"))
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("securePassword123")
	assert.NoError(t, err)
	assert.NotEqual(t, "securePassword123", hash)

	assert.True(t, CheckPassword(hash, "securePassword123"))
	assert.False(t, CheckPassword(hash, "wrongPassword"))
}

func TestGenerateUUID(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestPrintPrettyJSON(t *testing.T) {
	out := PrintPrettyJSON(&models.Identity{UserID: "u-1", Email: "bob@acme.com"})
	assert.Contains(t, out, "u-1")
	assert.Contains(t, out, "bob@acme.com")
}
