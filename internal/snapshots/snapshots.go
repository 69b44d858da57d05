// Package snapshots provides periodic JSON exports of all theme
// documents, with retention pruning.
package snapshots

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/verdantgarden/verdant/internal/models"
	"gorm.io/gorm"
)

// ThemeExport is one theme record as written to a snapshot file
type ThemeExport struct {
	GardenID    uint            `json:"garden_id"`
	Subdomain   string          `json:"subdomain"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type"`
	Kind        string          `json:"kind"`
	ActiveMode  string          `json:"active_mode"`
	Active      bool            `json:"active"`
	Document    json.RawMessage `json:"document"`
}

// Snapshot is the full export shape
type Snapshot struct {
	TakenAt time.Time     `json:"taken_at"`
	Themes  []ThemeExport `json:"themes"`
}

// Manager writes and prunes theme snapshots
type Manager struct {
	SnapshotPath string
	Retention    int
}

// NewManager creates a snapshot manager
func NewManager(snapshotPath string, retention int) *Manager {
	if retention <= 0 {
		retention = 10
	}
	return &Manager{
		SnapshotPath: snapshotPath,
		Retention:    retention,
	}
}

// CreateSnapshot exports every theme to a timestamped JSON file and
// prunes old snapshots beyond the retention count
func (m *Manager) CreateSnapshot(db *gorm.DB) (string, error) {
	if err := os.MkdirAll(m.SnapshotPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	var themeRows []models.Theme
	if err := db.Preload("Garden").Find(&themeRows).Error; err != nil {
		return "", fmt.Errorf("failed to load themes: %w", err)
	}

	snapshot := Snapshot{TakenAt: time.Now().UTC()}
	for _, row := range themeRows {
		doc := json.RawMessage(row.Document)
		if !json.Valid(doc) {
			// Never let one bad row poison the whole export
			doc, _ = json.Marshal(row.Document)
		}
		snapshot.Themes = append(snapshot.Themes, ThemeExport{
			GardenID:    row.GardenID,
			Subdomain:   row.Garden.Subdomain,
			Title:       row.Title,
			Description: row.Description,
			Type:        row.Type,
			Kind:        row.Kind,
			ActiveMode:  row.ActiveMode,
			Active:      row.Active,
			Document:    doc,
		})
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	name := fmt.Sprintf("themes-%s.json", snapshot.TakenAt.Format("20060102-150405"))
	path := filepath.Join(m.SnapshotPath, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := m.prune(); err != nil {
		return path, err
	}
	return path, nil
}

// prune deletes the oldest snapshots beyond the retention count
func (m *Manager) prune() error {
	matches, err := filepath.Glob(filepath.Join(m.SnapshotPath, "themes-*.json"))
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	if len(matches) <= m.Retention {
		return nil
	}

	// Timestamped names sort chronologically
	sort.Strings(matches)
	for _, stale := range matches[:len(matches)-m.Retention] {
		if err := os.Remove(stale); err != nil {
			return fmt.Errorf("failed to prune snapshot: %w", err)
		}
	}
	return nil
}

// List returns snapshot file paths, oldest first
func (m *Manager) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(m.SnapshotPath, "themes-*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}
