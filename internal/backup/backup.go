// Package backup exports and imports the account table as a JSON
// document, validated against an embedded schema so a hand-edited or
// truncated file is rejected before it can corrupt the store.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Victor-Rafael0/MATHPATH/internal/store"
)

// FormatVersion identifies the backup document layout.
const FormatVersion = 1

// Document is the on-disk backup layout.
type Document struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	Accounts   []Record  `json:"accounts"`
}

// Record is one account in a backup document.
type Record struct {
	Name             string `json:"name"`
	SecretHash       string `json:"secretHash"`
	Level            int    `json:"level"`
	UnlockedModuleID int    `json:"unlockedModuleId"`
	XP               int    `json:"xp"`
	Sigmas           int    `json:"sigmas"`
	Lives            int    `json:"lives"`
}

const documentSchema = `{
  "type": "object",
  "required": ["version", "exportedAt", "accounts"],
  "properties": {
    "version": {"const": 1},
    "exportedAt": {"type": "string"},
    "accounts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "secretHash", "level", "unlockedModuleId", "xp", "sigmas", "lives"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "secretHash": {"type": "string"},
          "level": {"type": "integer", "minimum": 1},
          "unlockedModuleId": {"type": "integer", "minimum": 1, "maximum": 7},
          "xp": {"type": "integer", "minimum": 0},
          "sigmas": {"type": "integer", "minimum": 0},
          "lives": {"type": "integer", "minimum": 0, "maximum": 5}
        }
      }
    }
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	var parsed any
	if err := json.Unmarshal([]byte(documentSchema), &parsed); err != nil {
		panic(fmt.Sprintf("backup: parse schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	const url = "schema://backup.json"
	if err := c.AddResource(url, parsed); err != nil {
		panic(fmt.Sprintf("backup: add schema resource: %v", err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("backup: compile schema: %v", err))
	}
	return compiled
}

// Export writes every account in the gateway to path as an indented
// JSON document, accounts sorted by name for stable diffs.
func Export(gw store.Gateway, path string) (int, error) {
	accounts, err := gw.LoadAccounts()
	if err != nil {
		return 0, fmt.Errorf("load accounts: %w", err)
	}

	doc := Document{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC(),
		Accounts:   make([]Record, 0, len(accounts)),
	}
	for name, acc := range accounts {
		doc.Accounts = append(doc.Accounts, Record{
			Name:             name,
			SecretHash:       acc.SecretHash,
			Level:            acc.Level,
			UnlockedModuleID: acc.UnlockedModule,
			XP:               acc.XP,
			Sigmas:           acc.Sigmas,
			Lives:            acc.Lives,
		})
	}
	sort.Slice(doc.Accounts, func(i, j int) bool {
		return doc.Accounts[i].Name < doc.Accounts[j].Name
	})

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode backup: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return 0, fmt.Errorf("write backup: %w", err)
	}
	return len(doc.Accounts), nil
}

// Decode parses and validates a backup document.
func Decode(data []byte) (*Document, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return &doc, nil
}

// Import reads a backup document from path and replaces the gateway's
// whole account table with its contents.
func Import(gw store.Gateway, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read backup: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return 0, err
	}

	accounts := make(map[string]store.Account, len(doc.Accounts))
	for _, r := range doc.Accounts {
		acc := store.Account{SecretHash: r.SecretHash}
		acc.Name = r.Name
		acc.Level = r.Level
		acc.UnlockedModule = r.UnlockedModuleID
		acc.XP = r.XP
		acc.Sigmas = r.Sigmas
		acc.Lives = r.Lives
		accounts[r.Name] = acc
	}
	if err := gw.SaveAccounts(accounts); err != nil {
		return 0, fmt.Errorf("save accounts: %w", err)
	}
	return len(accounts), nil
}
