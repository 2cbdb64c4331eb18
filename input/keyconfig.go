package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward to write in YAML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"colon":     ':',
}

// keyByName indexes tcell's key names case-insensitively ("esc", "ctrl-c", "up")
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseBindings builds a sparse override KeyTable from action name → key list,
// the shape of the "keys" configuration section. Returns error on unknown
// action or key names.
func ParseBindings(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]KeyEntry),
		Runes: make(map[rune]KeyEntry),
	}

	// Deterministic order so a key listed twice resolves the same way every run
	actions := make([]string, 0, len(bindings))
	for a := range bindings {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	for _, action := range actions {
		entry, err := resolveAction(action)
		if err != nil {
			return nil, err
		}
		for _, keyStr := range bindings[action] {
			if err := bind(kt, keyStr, entry); err != nil {
				return nil, fmt.Errorf("[%s] %w", action, err)
			}
		}
	}
	return kt, nil
}

func bind(kt *KeyTable, keyStr string, entry KeyEntry) error {
	if r, ok := resolveRune(keyStr); ok {
		kt.Runes[r] = entry
		return nil
	}
	if k, ok := keyByName[strings.ToLower(keyStr)]; ok {
		kt.Keys[k] = entry
		return nil
	}
	return fmt.Errorf("unknown key name: %q", keyStr)
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// LoadKeyTable returns the default table with bindings applied on top
func LoadKeyTable(bindings map[string][]string) (*KeyTable, error) {
	if len(bindings) == 0 {
		return DefaultKeyTable(), nil
	}
	override, err := ParseBindings(bindings)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}
