//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest is the part of a scoop manifest the app reads
type Manifest struct {
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
}

// CreateTestWorkspace creates a temporary directory holding an empty scoop root
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	for _, dir := range []string{"buckets", "apps"} {
		if err := os.MkdirAll(filepath.Join(tf.ScoopRoot(), dir), 0755); err != nil {
			return "", err
		}
	}
	return tmpDir, nil
}

// ScoopRoot returns the scoop root inside the workspace
func (tf *TUITestFramework) ScoopRoot() string {
	return filepath.Join(tf.workspace, "scoop")
}

// CreateBucket writes a bucket with one manifest per app
func (tf *TUITestFramework) CreateBucket(name string, apps map[string]Manifest) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	dir := filepath.Join(tf.ScoopRoot(), "buckets", name, "bucket")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create bucket: %w", err)
	}

	for app, m := range apps {
		if err := writeJSON(filepath.Join(dir, app+".json"), m); err != nil {
			return "", err
		}
	}
	return dir, nil
}

// InstallApp marks an app as installed from bucket
func (tf *TUITestFramework) InstallApp(name, bucket string, m Manifest) error {
	dir := filepath.Join(tf.ScoopRoot(), "apps", name, "current")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create app dir: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, "manifest.json"), m); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "install.json"), map[string]string{"bucket": bucket})
}

// CreateDefaultScoop creates main and extras buckets with a few apps, git installed
func (tf *TUITestFramework) CreateDefaultScoop() error {
	if _, err := tf.CreateBucket("main", map[string]Manifest{
		"git":  {Version: "2.45.0", Description: "Distributed version control system"},
		"7zip": {Version: "24.07", Description: "File archiver with a high compression ratio"},
	}); err != nil {
		return err
	}
	if _, err := tf.CreateBucket("extras", map[string]Manifest{
		"gitui":   {Version: "0.26.3", Description: "Terminal UI for git"},
		"firefox": {Version: "128.0", Description: "Web browser"},
	}); err != nil {
		return err
	}
	return tf.InstallApp("git", "main", Manifest{Version: "2.45.0", Description: "Distributed version control system"})
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
