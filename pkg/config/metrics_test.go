package config

import "testing"

func TestInitializeMetrics_Disabled(t *testing.T) {
	cfg := GetDefaultConfig()

	result := InitializeMetrics(cfg)
	if result.Server != nil {
		t.Error("Expected no server when metrics are disabled")
	}
	if result.Emulator == nil {
		t.Fatal("Expected no-op emulator metrics, got nil")
	}

	// No-op metrics must accept calls
	result.Emulator.RecordLinkHops(3)
	result.Emulator.RecordTranslation("win32", true)
}
