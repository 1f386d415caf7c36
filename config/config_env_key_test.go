package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storefront": map[string]any{
			"sslMode": "disable",
			"dbName":  "petmart_storefront",
		},
		"operations": map[string]any{
			"maxOpenConns": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STOREFRONT_SSLMODE", want: "storefront.sslMode"},
		{envKey: "STOREFRONT_DBNAME", want: "storefront.dbName"},
		{envKey: "OPERATIONS_MAXOPENCONNS", want: "operations.maxOpenConns"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
