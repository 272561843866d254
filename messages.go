package validator

import (
	"encoding/json"
	"errors"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog loading errors.
var (
	// ErrFailedToParseCatalog is returned when catalog content cannot be decoded.
	ErrFailedToParseCatalog = errors.New("failed to parse message catalog")

	// ErrEmptyCatalog is returned when catalog content decodes to no entries.
	ErrEmptyCatalog = errors.New("message catalog contains no entries")
)

func defaultMessages() map[string]string {
	return map[string]string{
		RuleRequired:    "This field is required.",
		RuleEmail:       "Must be a valid email.",
		RuleCreditCard:  "Please enter a valid credit card number",
		RulePattern:     "Please match the pattern %s",
		RuleNumbersOnly: "Please enter only numbers.",
		RuleZipCode:     "Please enter a valid zip code.",
	}
}

// catalog is the process-wide message table. Validators read it through
// Message; mutation happens only through the Set/Load/Reset operations below,
// typically at startup to localize the defaults.
var (
	catalogMu sync.RWMutex
	catalog   = defaultMessages()
)

// Message returns the failure message for a rule name, or "" when the catalog
// has no entry for it.
func Message(name string) string {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	return catalog[name]
}

// Messages returns a copy of the active message catalog.
func Messages() map[string]string {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	out := make(map[string]string, len(catalog))
	for name, msg := range catalog {
		out[name] = msg
	}
	return out
}

// SetMessage replaces the failure message for one rule name. Unknown names are
// accepted so custom rules can carry catalog messages too.
func SetMessage(name, message string) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog[name] = message
}

// SetMessages merges the given entries over the active catalog. Entries not
// named keep their current messages.
func SetMessages(messages map[string]string) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	for name, msg := range messages {
		catalog[name] = msg
	}
}

// ResetMessages restores the default English catalog.
func ResetMessages() {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog = defaultMessages()
}

// LoadMessagesYAML merges a YAML document of rule-name to message entries over
// the active catalog:
//
//	required: "Dieses Feld ist erforderlich."
//	email: "Muss eine gültige E-Mail sein."
func LoadMessagesYAML(content []byte) error {
	var entries map[string]string
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return errors.Join(ErrFailedToParseCatalog, err)
	}
	return mergeCatalog(entries)
}

// LoadMessagesJSON merges a JSON object of rule-name to message entries over
// the active catalog.
func LoadMessagesJSON(content []byte) error {
	var entries map[string]string
	if err := json.Unmarshal(content, &entries); err != nil {
		return errors.Join(ErrFailedToParseCatalog, err)
	}
	return mergeCatalog(entries)
}

func mergeCatalog(entries map[string]string) error {
	if len(entries) == 0 {
		return ErrEmptyCatalog
	}
	SetMessages(entries)
	return nil
}
