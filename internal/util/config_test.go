package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeEnvFile(t, "DATABASE_URL=postgres://localhost/sellerops\n"+
		"TOKEN_SECRET_KEY="+secret+"\n"+
		"REDIS_SERVER_ADDRESS=localhost:6379\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, EnvironmentDevelopment, config.Environment)
	assert.False(t, config.IsProduction())
	assert.Equal(t, "0.0.0.0:8080", config.HTTPServerAddress)
	assert.Equal(t, 24*time.Hour, config.AccessTokenDuration)
	assert.Equal(t, 10*time.Second, config.CarrierTimeout)
	assert.Equal(t, 2, config.CarrierRetryCount)
	assert.Equal(t, "delhivery", config.DefaultCarrier)
	assert.Equal(t, 10*time.Minute, config.TrackingCacheTTL)
	assert.Equal(t, 15*time.Minute, config.SyncInterval)
	assert.Equal(t, int32(200), config.SyncBatchSize)
	assert.Equal(t, time.Hour, config.MismatchSummaryInterval)
}

func TestLoadConfigFileOverrides(t *testing.T) {
	path := writeEnvFile(t, "DATABASE_URL=postgres://localhost/sellerops\n"+
		"TOKEN_SECRET_KEY="+secret+"\n"+
		"REDIS_SERVER_ADDRESS=localhost:6379\n"+
		"ENVIRONMENT=production\n"+
		"SYNC_INTERVAL=5m\n"+
		"SYNC_BATCH_SIZE=50\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, config.IsProduction())
	assert.Equal(t, 5*time.Minute, config.SyncInterval)
	assert.Equal(t, int32(50), config.SyncBatchSize)
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	path := writeEnvFile(t, "DATABASE_URL=postgres://localhost/sellerops\n"+
		"TOKEN_SECRET_KEY="+secret+"\n"+
		"REDIS_SERVER_ADDRESS=localhost:6379\n")
	t.Setenv("DEFAULT_CARRIER", "xpressbees")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "xpressbees", config.DefaultCarrier)
}

func TestLoadConfigValidation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing database url",
			content: "TOKEN_SECRET_KEY=" + secret + "\nREDIS_SERVER_ADDRESS=localhost:6379\n",
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "short secret",
			content: "DATABASE_URL=postgres://x\nTOKEN_SECRET_KEY=short\nREDIS_SERVER_ADDRESS=localhost:6379\n",
			wantErr: "at least 32 characters",
		},
		{
			name:    "missing redis",
			content: "DATABASE_URL=postgres://x\nTOKEN_SECRET_KEY=" + secret + "\n",
			wantErr: "REDIS_SERVER_ADDRESS is required",
		},
		{
			name:    "zero batch size",
			content: "DATABASE_URL=postgres://x\nTOKEN_SECRET_KEY=" + secret + "\nREDIS_SERVER_ADDRESS=localhost:6379\nSYNC_BATCH_SIZE=0\n",
			wantErr: "SYNC_BATCH_SIZE must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeEnvFile(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeEnvFile(t, "DATABASE_URL=postgres://x\nTOKEN_SECRET_KEY="+secret+"\nREDIS_SERVER_ADDRESS=r:6379\nCLOUDINARY_URL=x\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGenerateSyncRunCode(t *testing.T) {
	code := GenerateSyncRunCode()
	assert.Regexp(t, `^SYN-[23456789ABCDEFGHJKLMNPQRSTUVWXYZ]{10}$`, code)
	assert.NotEqual(t, code, GenerateSyncRunCode())
}

func TestTruncateContent(t *testing.T) {
	assert.Equal(t, "short", TruncateContent("short", 10))
	assert.Equal(t, "abcdefg...", TruncateContent("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", TruncateContent("abcdef", 2))
	assert.Empty(t, TruncateContent("abcdef", 0))

	// Limits count characters, not bytes.
	assert.Equal(t, "héllo wörld", TruncateContent("héllo wörld", 11))
	assert.Equal(t, "ÄÖÜ...", TruncateContent("ÄÖÜäöüß", 6))
	assert.Equal(t, "🚚🚚", TruncateContent("🚚🚚🚚", 2))

	long := strings.Repeat("ड", 2100)
	got := TruncateContent(long, 2000)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 2000, utf8.RuneCountInString(got))
}
