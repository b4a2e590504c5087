package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"pricing": map[string]any{
			"freeDeliveryThreshold": "1000",
			"deliveryFee":           "60",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"admin": map[string]any{
			"passwordHash": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PRICING_FREEDELIVERYTHRESHOLD", want: "pricing.freeDeliveryThreshold"},
		{envKey: "PRICING_DELIVERYFEE", want: "pricing.deliveryFee"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ADMIN_PASSWORDHASH", want: "admin.passwordHash"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Pricing.FreeDeliveryThreshold != "1000" {
		t.Fatalf("FreeDeliveryThreshold = %q, want 1000", cfg.Pricing.FreeDeliveryThreshold)
	}
	if cfg.Pricing.DeliveryFee != "60" {
		t.Fatalf("DeliveryFee = %q, want 60", cfg.Pricing.DeliveryFee)
	}
	if cfg.Order.IDMaxAttempts != 3 {
		t.Fatalf("IDMaxAttempts = %d, want 3", cfg.Order.IDMaxAttempts)
	}
	if cfg.Catalog.PageLimit != 20 {
		t.Fatalf("PageLimit = %d, want 20", cfg.Catalog.PageLimit)
	}
}
