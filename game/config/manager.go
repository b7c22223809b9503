package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hey-amo/ShippingInvestors/game/engine"
)

var (
	ErrRulesNotFound = errors.New("rule set not found")
	ErrInvalidRules  = errors.New("invalid rule set")
)

// RulesInfo describes one loadable rule set
type RulesInfo struct {
	Filename    string `json:"filename"`
	RulesID     string `json:"rules_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinPlayers  int    `json:"min_players"`
	MaxPlayers  int    `json:"max_players"`
}

// Manager loads named rule sets from YAML files in a directory, caching
// each one after its first read. When the directory holds no usable rule
// set the built-in defaults serve as the fallback.
type Manager struct {
	rulesDir     string
	defaultRules *engine.Rules
	cache        map[string]*engine.Rules
	mu           sync.RWMutex
}

// NewManager creates a manager over the given directory
func NewManager(rulesDir string) (*Manager, error) {
	if _, err := os.Stat(rulesDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("rules directory does not exist: %s", rulesDir)
	}

	m := &Manager{
		rulesDir: rulesDir,
		cache:    make(map[string]*engine.Rules),
	}
	m.loadDefaultRules()
	return m, nil
}

// LoadRules loads a rule set by name
func (m *Manager) LoadRules(name string) (*engine.Rules, error) {
	m.mu.RLock()
	if rules, exists := m.cache[name]; exists {
		m.mu.RUnlock()
		return rules, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if rules, exists := m.cache[name]; exists {
		return rules, nil
	}

	data, err := os.ReadFile(m.rulesPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRulesNotFound
		}
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules engine.Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	m.cache[name] = &rules
	return &rules, nil
}

// ListRules returns information about every loadable rule set
func (m *Manager) ListRules() ([]*RulesInfo, error) {
	entries, err := os.ReadDir(m.rulesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules directory: %w", err)
	}

	var infos []*RulesInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		rules, err := m.LoadRules(name)
		if err != nil {
			// Skip files that do not parse or validate
			continue
		}
		infos = append(infos, &RulesInfo{
			Filename:    entry.Name(),
			RulesID:     name,
			Name:        rules.Name,
			Description: rules.Description,
			MinPlayers:  rules.MinPlayers,
			MaxPlayers:  rules.MaxPlayers,
		})
	}
	return infos, nil
}

// GetDefault returns the default rule set
func (m *Manager) GetDefault() *engine.Rules {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultRules
}

// SetDefault switches the default to a named rule set
func (m *Manager) SetDefault(name string) error {
	rules, err := m.LoadRules(name)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRules = rules
	return nil
}

// SaveRules writes a rule set to disk and caches it
func (m *Manager) SaveRules(name string, rules *engine.Rules) error {
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	data, err := yaml.Marshal(rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}
	if err := os.WriteFile(m.rulesPath(name), data, 0644); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}

	m.mu.Lock()
	m.cache[name] = rules
	m.mu.Unlock()
	return nil
}

// RefreshCache drops every cached rule set and re-resolves the default
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.cache = make(map[string]*engine.Rules)
	m.mu.Unlock()
	m.loadDefaultRules()
}

// loadDefaultRules resolves the default: standard.yaml, then the first
// loadable rule set, then the built-in defaults.
func (m *Manager) loadDefaultRules() {
	rules, err := m.LoadRules("standard")
	if err == nil {
		m.mu.Lock()
		m.defaultRules = rules
		m.mu.Unlock()
		return
	}

	infos, err := m.ListRules()
	if err == nil && len(infos) > 0 {
		if rules, err := m.LoadRules(infos[0].RulesID); err == nil {
			m.mu.Lock()
			m.defaultRules = rules
			m.mu.Unlock()
			return
		}
	}

	m.mu.Lock()
	m.defaultRules = engine.DefaultRules()
	m.mu.Unlock()
}

func (m *Manager) rulesPath(name string) string {
	filename := name
	if !strings.HasSuffix(filename, ".yaml") {
		filename = name + ".yaml"
	}
	return filepath.Join(m.rulesDir, filename)
}
