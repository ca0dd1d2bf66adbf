package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":    "",
			"workerPort": 8081,
		},
		"env": map[string]any{
			"log": map[string]any{
				"slowQuery": "200ms",
			},
		},
		"seedAdmin": map[string]any{
			"dateOfBirth": "1990-01-01",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"payment": map[string]any{
			"apiToken":     "",
			"pollInterval": "5s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_WORKERPORT", want: "pubsub.workerPort"},
		{envKey: "ENV_LOG_SLOWQUERY", want: "env.log.slowQuery"},
		{envKey: "SEEDADMIN_DATEOFBIRTH", want: "seedAdmin.dateOfBirth"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PAYMENT_APITOKEN", want: "payment.apiToken"},
		{envKey: "PAYMENT_POLLINTERVAL", want: "payment.pollInterval"},
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
