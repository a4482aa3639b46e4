package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input/key"
)

// Loader errors
var (
	ErrUnsupportedFormat = errors.New("unsupported keymap format")
	ErrEmptyEntry        = errors.New("keymap entry has no event")
)

// Format is a keymap file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath returns the format implied by a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Entry is one binding in a keymap file.
//
// Exactly one of Event, Edits or UntilFound describes the bound event,
// unless Remove is set, in which case the binding is deleted.
type Entry struct {
	// Key is the key in key.Parse notation, e.g. "Ctrl+L" or "<C-l>".
	Key string `toml:"key" yaml:"key" json:"key"`

	// Event is the name of a notification event, e.g. "ClearScreen".
	Event string `toml:"event,omitempty" yaml:"event,omitempty" json:"event,omitempty"`

	// Edits lists edit commands, e.g. ["Move(LineEnd)", "InsertNewline"].
	Edits []string `toml:"edits,omitempty" yaml:"edits,omitempty" json:"edits,omitempty"`

	// UntilFound lists notification events tried in order.
	UntilFound []string `toml:"until_found,omitempty" yaml:"until_found,omitempty" json:"until_found,omitempty"`

	// Remove deletes the binding for Key instead of setting it.
	Remove bool `toml:"remove,omitempty" yaml:"remove,omitempty" json:"remove,omitempty"`
}

// File is the decoded contents of a keymap file.
type File struct {
	Normal []Entry `toml:"normal" yaml:"normal" json:"normal"`
	Insert []Entry `toml:"insert" yaml:"insert" json:"insert"`
}

// parsedEntry is an entry resolved to a key and an event.
type parsedEntry struct {
	key    key.Event
	event  edit.Event
	remove bool
}

// parse resolves the entry.
func (e Entry) parse() (parsedEntry, error) {
	k, err := key.Parse(e.Key)
	if err != nil {
		return parsedEntry{}, err
	}
	if e.Remove {
		return parsedEntry{key: k, remove: true}, nil
	}

	var ev edit.Event
	switch {
	case len(e.UntilFound) > 0:
		alts := make([]edit.Event, 0, len(e.UntilFound))
		for _, name := range e.UntilFound {
			alt, err := edit.ParseEvent(name, nil)
			if err != nil {
				return parsedEntry{}, err
			}
			alts = append(alts, alt)
		}
		ev = edit.UntilFound(alts...)
	case e.Event != "" || len(e.Edits) > 0:
		ev, err = edit.ParseEvent(e.Event, e.Edits)
		if err != nil {
			return parsedEntry{}, err
		}
	default:
		return parsedEntry{}, ErrEmptyEntry
	}
	return parsedEntry{key: k, event: ev}, nil
}

// Apply upserts every entry of f into the given tables. Entries are all
// validated first; on error neither table is modified.
func (f *File) Apply(normal, insert *Keybindings) error {
	normalEntries, err := parseEntries("normal", f.Normal)
	if err != nil {
		return err
	}
	insertEntries, err := parseEntries("insert", f.Insert)
	if err != nil {
		return err
	}

	applyEntries(normal, normalEntries)
	applyEntries(insert, insertEntries)
	return nil
}

// Len returns the total number of entries.
func (f *File) Len() int {
	return len(f.Normal) + len(f.Insert)
}

func parseEntries(section string, entries []Entry) ([]parsedEntry, error) {
	parsed := make([]parsedEntry, 0, len(entries))
	for i, e := range entries {
		p, err := e.parse()
		if err != nil {
			return nil, fmt.Errorf("%s[%d] %q: %w", section, i, e.Key, err)
		}
		parsed = append(parsed, p)
	}
	return parsed, nil
}

func applyEntries(kb *Keybindings, entries []parsedEntry) {
	for _, e := range entries {
		if e.remove {
			kb.Remove(e.key.Modifiers, e.key.Code())
			continue
		}
		kb.Bind(e.key.Modifiers, e.key.Code(), e.event)
	}
}

// Loader loads keymap files.
type Loader struct {
	// searchPaths are directories to search for keymap files.
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap file, choosing the decoder by extension.
func (l *Loader) LoadFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	return l.LoadReader(f, format)
}

// LoadReader decodes a keymap file in the given format.
func (l *Loader) LoadReader(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var file File
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &file)
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	case FormatJSON:
		err = json.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("decoding keymap at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	return &file, nil
}

// LoadAll loads every keymap file in the search paths, in path order and
// then file name order, and merges them into one File. Later files win.
func (l *Loader) LoadAll() (*File, error) {
	merged := &File{}

	for _, dir := range l.searchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading keymap dir: %w", err)
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if _, err := FormatFromPath(e.Name()); err == nil {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			f, err := l.LoadFile(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			merged.Normal = append(merged.Normal, f.Normal...)
			merged.Insert = append(merged.Insert, f.Insert...)
		}
	}

	return merged, nil
}

// Encode writes f in the given format.
func (f *File) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// SaveFile writes f to path, choosing the encoder by extension.
func (f *File) SaveFile(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := f.Encode(&buf, format); err != nil {
		return fmt.Errorf("encoding keymap: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}

	return nil
}
