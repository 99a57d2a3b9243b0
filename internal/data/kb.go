// Package data loads the draft knowledge base from the data directory.
package data

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// KnowledgeBase is the immutable in-memory game knowledge: the hero roster,
// the display-name lookup and one strategy document per hero. It is built
// once by Load (or New in tests) and never mutated afterwards.
type KnowledgeBase struct {
	heroes     []Hero
	normalized []NormalizedHero
	nameMap    map[string]HeroRef
	strategies map[string]*Strategy
}

// New builds a knowledge base from already-parsed collections.
func New(heroes []Hero, normalized []NormalizedHero, strategies map[string]*Strategy) *KnowledgeBase {
	kb := &KnowledgeBase{
		heroes:     heroes,
		normalized: normalized,
		nameMap:    make(map[string]HeroRef),
		strategies: make(map[string]*Strategy),
	}

	// Only entries carrying both a display name and a safe name make it
	// into the lookup.
	for _, h := range normalized {
		if h.Name == "" || h.SafeName == "" {
			continue
		}
		kb.nameMap[h.Name] = HeroRef{SafeName: h.SafeName, ImagePath: h.ImagePath}
	}

	for safeName, st := range strategies {
		kb.strategies[safeName] = st
	}

	return kb
}

// Load reads all game data from dataDir. Missing or malformed files are
// logged and replaced with empty collections; Load itself never fails.
func Load(dataDir string) *KnowledgeBase {
	log.Println("Loading game data...")

	var heroes []Hero
	if err := readJSON(filepath.Join(dataDir, "heroes.json"), &heroes); err != nil {
		log.Printf("heroes.json: %v", err)
		heroes = nil
	}

	var normalized []NormalizedHero
	if err := readJSON(filepath.Join(dataDir, "normalized_heroes.json"), &normalized); err != nil {
		log.Printf("normalized_heroes.json: %v", err)
		normalized = nil
	}

	kb := New(heroes, normalized, nil)
	kb.loadStrategies(filepath.Join(dataDir, "howdoiplay_json"))

	log.Printf("Loaded %d heroes, %d name mappings, %d strategies",
		len(kb.heroes), len(kb.nameMap), len(kb.strategies))

	return kb
}

// loadStrategies reads every .json document in dir. The file stem is taken
// verbatim as the hero's safe name. A bad individual file is skipped, not fatal.
func (kb *KnowledgeBase) loadStrategies(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Strategy dir %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		var st Strategy
		if err := readJSON(filepath.Join(dir, name), &st); err != nil {
			log.Printf("Strategy %s: %v", name, err)
			continue
		}

		kb.strategies[strings.TrimSuffix(name, ".json")] = &st
	}
}

// Heroes returns the roster as loaded.
func (kb *KnowledgeBase) Heroes() []Hero {
	return kb.heroes
}

// HeroNames returns the sorted display names known to the lookup,
// for autocomplete.
func (kb *KnowledgeBase) HeroNames() []string {
	names := make([]string, 0, len(kb.nameMap))
	for name := range kb.nameMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a display name to its normalized reference.
func (kb *KnowledgeBase) Resolve(name string) (HeroRef, bool) {
	ref, ok := kb.nameMap[name]
	return ref, ok
}

// Strategy returns the strategy document for a safe name.
func (kb *KnowledgeBase) Strategy(safeName string) (*Strategy, bool) {
	st, ok := kb.strategies[safeName]
	return st, ok
}

// StrategyCount returns the number of loaded strategy documents.
func (kb *KnowledgeBase) StrategyCount() int {
	return len(kb.strategies)
}

// SafeName derives the canonical filesystem-safe id for a display name:
// "Nature's Prophet" -> "natures_prophet", "Anti-Mage" -> "anti_mage".
// Loading takes file stems verbatim; this is used by the sync pipeline.
func SafeName(display string) string {
	s := strings.ToLower(strings.TrimSpace(display))
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), "_")
}

// readJSON reads and unmarshals one file into v.
func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
