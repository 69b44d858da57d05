// SPDX-License-Identifier: MIT
package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestInitConfigCreatesFileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if got := GetString("database.type"); got != "sqlite" {
		t.Errorf("database.type = %q, want sqlite", got)
	}
	if got := GetInt("auth.jwt_expiry_hours"); got != 8 {
		t.Errorf("auth.jwt_expiry_hours = %d, want 8", got)
	}
	if !GetBool("snapshots.enabled") {
		t.Error("snapshots.enabled should default to true")
	}
	if got := GetDuration("snapshots.interval"); got != 24*time.Hour {
		t.Errorf("snapshots.interval = %v, want 24h", got)
	}
}

func TestSetPersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if err := Set("server.base_domain", "verdant.test"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Reload from disk
	if err := InitConfig(path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := GetString("server.base_domain"); got != "verdant.test" {
		t.Errorf("server.base_domain = %q after reload, want verdant.test", got)
	}
}

func TestGetAllIncludesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	all := GetAll()
	if all == nil {
		t.Fatal("GetAll returned nil")
	}
	if _, ok := all["server"]; !ok {
		t.Error("GetAll missing server section")
	}
}
