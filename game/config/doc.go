// Package config provides rule-set management for Shipping Investors.
//
// The config package handles:
//   - Loading rule sets from YAML files
//   - Rule-set validation and caching
//   - Default rule-set management
//   - Rule-set discovery and listing
//
// Rule-Set Format:
//
// Rule sets are stored as YAML files in the rules directory. Each file
// overrides the tunable constants of the engine: player bounds, starting
// coins and tokens, dock counts and seat limits, hand size, delivery caps
// and the message log capacity.
//
// Usage:
//
//	manager, err := config.NewManager("rules")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific rule set
//	rules, err := manager.LoadRules("standard")
//
//	// Fall back to the defaults
//	rules = manager.GetDefault()
//
//	// List available rule sets
//	infos, err := manager.ListRules()
//
// When the directory holds no usable rule set the built-in defaults from
// engine.DefaultRules serve as the fallback, so a server can always start.
package config
