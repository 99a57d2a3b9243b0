package scraper

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/draftbot/internal/data"
)

// requestDelay keeps the sync pipeline polite towards the tips site.
const requestDelay = 500 * time.Millisecond

// SyncAll rebuilds the on-disk knowledge base: it writes
// normalized_heroes.json for the roster and one strategy document per hero
// into howdoiplay_json/. Per-hero failures are logged and skipped.
func (c *Client) SyncAll(kb *data.KnowledgeBase, dataDir string) error {
	heroes := kb.Heroes()
	if len(heroes) == 0 {
		return fmt.Errorf("empty roster, nothing to sync")
	}

	strategyDir := filepath.Join(dataDir, "howdoiplay_json")
	if err := os.MkdirAll(strategyDir, 0o755); err != nil {
		return fmt.Errorf("create strategy dir: %w", err)
	}

	normalized := make([]data.NormalizedHero, 0, len(heroes))
	synced := 0

	for _, hero := range heroes {
		safeName := data.SafeName(hero.Name)
		normalized = append(normalized, data.NormalizedHero{
			Name:      hero.Name,
			SafeName:  safeName,
			ImagePath: fmt.Sprintf("images/heroes/%s.png", safeName),
		})

		st, err := c.FetchStrategy(hero.Name)
		if err != nil {
			log.Printf("Sync %s: %v", hero.Name, err)
			continue
		}

		if err := writeJSON(filepath.Join(strategyDir, safeName+".json"), st); err != nil {
			log.Printf("Sync %s: %v", hero.Name, err)
			continue
		}

		synced++
		time.Sleep(requestDelay)
	}

	if err := writeJSON(filepath.Join(dataDir, "normalized_heroes.json"), normalized); err != nil {
		return fmt.Errorf("write normalized roster: %w", err)
	}

	log.Printf("Synced %d/%d strategies", synced, len(heroes))
	return nil
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
