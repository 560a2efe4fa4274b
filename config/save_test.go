package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSaveLocal(t *testing.T) {
	dir := t.TempDir()
	sc := SaveConfig{
		LocalConfigName: LocalConfigName,
		ValidKeys:       ValidKeys,
	}

	if err := sc.SaveLocal(dir, "relevance_threshold", "45"); err != nil {
		t.Fatalf("SaveLocal failed: %v", err)
	}
	if err := sc.SaveLocal(dir, "jira.url", "https://example.atlassian.net"); err != nil {
		t.Fatalf("SaveLocal failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LocalConfigName))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if parsed["relevance_threshold"] != "45" {
		t.Errorf("relevance_threshold = %v", parsed["relevance_threshold"])
	}
	jiraMap, ok := parsed["jira"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested jira map, got %T", parsed["jira"])
	}
	if jiraMap["url"] != "https://example.atlassian.net" {
		t.Errorf("jira.url = %v", jiraMap["url"])
	}
}

func TestSaveLocalRejectsUnknownKey(t *testing.T) {
	sc := SaveConfig{
		LocalConfigName: LocalConfigName,
		ValidKeys:       ValidKeys,
	}

	err := sc.SaveLocal(t.TempDir(), "bogus_key", "1")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "bogus_key") {
		t.Errorf("error %q should name the key", err.Error())
	}
}

func TestSaveLocalPreservesExisting(t *testing.T) {
	dir := t.TempDir()
	sc := SaveConfig{
		LocalConfigName: LocalConfigName,
		ValidKeys:       ValidKeys,
	}

	if err := sc.SaveLocal(dir, "relevance_threshold", "45"); err != nil {
		t.Fatalf("SaveLocal failed: %v", err)
	}
	if err := sc.SaveLocal(dir, "max_keywords", "10"); err != nil {
		t.Fatalf("SaveLocal failed: %v", err)
	}

	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults:  Defaults(),
		ValidKeys: ValidKeys,
	}, "", filepath.Join(dir, LocalConfigName))

	cfg := resolver.Resolve()
	if got := cfg.Get("relevance_threshold"); got != "45" {
		t.Errorf("relevance_threshold = %q, want 45", got)
	}
	if got := cfg.Get("max_keywords"); got != "10" {
		t.Errorf("max_keywords = %q, want 10", got)
	}
}

func TestDeleteLocalKey(t *testing.T) {
	dir := t.TempDir()
	sc := SaveConfig{
		LocalConfigName: LocalConfigName,
		ValidKeys:       ValidKeys,
	}

	if err := sc.SaveLocal(dir, "relevance_threshold", "45"); err != nil {
		t.Fatalf("SaveLocal failed: %v", err)
	}
	if err := sc.SaveLocal(dir, "jira.url", "https://example.atlassian.net"); err != nil {
		t.Fatalf("SaveLocal failed: %v", err)
	}

	if err := sc.DeleteLocalKey(dir, "jira.url"); err != nil {
		t.Fatalf("DeleteLocalKey failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LocalConfigName))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if _, ok := parsed["jira"]; ok {
		t.Errorf("jira map should be gone after removing its last key: %v", parsed["jira"])
	}
	if parsed["relevance_threshold"] != "45" {
		t.Errorf("relevance_threshold = %v, want preserved", parsed["relevance_threshold"])
	}

	// Deleting from a missing file is a no-op.
	if err := sc.DeleteLocalKey(t.TempDir(), "jira.url"); err != nil {
		t.Errorf("DeleteLocalKey on missing file: %v", err)
	}
}

func TestDeleteGlobalKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	sc := SaveConfig{
		GlobalConfigDir: GlobalConfigDir,
		ValidKeys:       ValidKeys,
	}

	if err := sc.SaveGlobal("jira.url", "https://example.atlassian.net"); err != nil {
		t.Fatalf("SaveGlobal failed: %v", err)
	}
	if err := sc.DeleteGlobalKey("jira.url"); err != nil {
		t.Fatalf("DeleteGlobalKey failed: %v", err)
	}

	home, _ := os.UserHomeDir()
	data, err := os.ReadFile(filepath.Join(home, ".config", GlobalConfigDir, "config.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if _, ok := parsed["jira"]; ok {
		t.Errorf("jira map should be gone: %v", parsed["jira"])
	}
}

func TestSaveBoolValues(t *testing.T) {
	dir := t.TempDir()
	sc := SaveConfig{
		LocalConfigName: LocalConfigName,
		ValidKeys:       ValidKeys,
	}

	if err := sc.SaveLocal(dir, "offline", "true"); err != nil {
		t.Fatalf("SaveLocal failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LocalConfigName))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if parsed["offline"] != true {
		t.Errorf("offline = %v (%T), want bool true", parsed["offline"], parsed["offline"])
	}
}
