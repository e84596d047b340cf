package configfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/panelkit/confdoc/pkg/confdoc"
	"github.com/panelkit/confdoc/pkg/confdoc/formats"
)

// ViewMode selects how a file is edited.
type ViewMode string

// View modes.
const (
	ViewForm ViewMode = "form"
	ViewRaw  ViewMode = "raw"
)

// Errors returned by State operations.
var (
	ErrInvalidViewMode = errors.New("invalid view mode")
	ErrRawMode         = errors.New("file is in raw mode")
	ErrBlankKey        = errors.New("key must not be blank")
	ErrObjectEntry     = errors.New("entry is an object")
	ErrInvalidValue    = errors.New("value does not match the entry type")
)

// ParseViewMode parses a view mode name.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewForm:
		return ViewForm, nil
	case ViewRaw:
		return ViewRaw, nil
	default:
		return "", fmt.Errorf("%w: %q (expected form or raw)", ErrInvalidViewMode, s)
	}
}

// State is the editing state of one configuration file.
type State struct {
	Path       string
	Format     formats.Format
	Sections   []confdoc.Section
	Error      error
	Loaded     bool
	ViewMode   ViewMode
	RawContent string
}

// NewState returns an unloaded state for path.
func NewState(path string) *State {
	return &State{Path: path, ViewMode: ViewForm}
}

// Load replaces the state with content. When the format is unsupported or
// content does not parse, the state switches to raw mode, Error records why
// and RawContent keeps content unchanged.
func (s *State) Load(content string) {
	s.Loaded = true
	s.RawContent = content
	s.Sections = nil

	f, err := formats.Lookup(s.Path)
	if err != nil {
		s.Format = formats.FormatUnknown
		s.fallback(err)
		return
	}
	s.Format = f

	m, err := formats.Parse(f, content)
	if err != nil {
		s.fallback(err)
		return
	}
	s.Sections = confdoc.ToSections(m)
	s.ViewMode = ViewForm
	s.Error = nil
}

func (s *State) fallback(err error) {
	s.ViewMode = ViewRaw
	s.Error = err
}

// Content returns the full text to write for the file. In raw mode this is
// RawContent verbatim; in form mode the sections are rebuilt and serialized.
func (s *State) Content() (string, error) {
	if s.ViewMode == ViewRaw {
		return s.RawContent, nil
	}
	m, err := confdoc.ToConfigMap(s.Sections)
	if err != nil {
		return "", err
	}
	return formats.Serialize(s.Format, m)
}

// SetViewMode switches between form and raw editing. Switching to raw
// serializes the current sections into RawContent. Switching to form parses
// RawContent; if that fails the state stays in raw mode and the error is
// returned.
func (s *State) SetViewMode(mode ViewMode) error {
	switch mode {
	case ViewForm, ViewRaw:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, mode)
	}
	if mode == s.ViewMode {
		return nil
	}

	if mode == ViewRaw {
		content, err := s.Content()
		if err != nil {
			return err
		}
		s.RawContent = content
		s.ViewMode = ViewRaw
		s.Error = nil
		return nil
	}

	if s.Format == formats.FormatUnknown {
		err := fmt.Errorf("%w: %s", confdoc.ErrUnsupportedFormat, s.Path)
		s.Error = err
		return err
	}
	m, err := formats.Parse(s.Format, s.RawContent)
	if err != nil {
		s.Error = err
		return err
	}
	s.Sections = confdoc.ToSections(m)
	s.ViewMode = ViewForm
	s.Error = nil
	return nil
}

// Reset clears everything but Path. It is used when the set of files of a
// server changes and the old contents no longer apply.
func (s *State) Reset() {
	*s = State{Path: s.Path, ViewMode: ViewForm}
}

// IsGeneral reports whether section names the General section. The empty
// name and "general" (in any case) both do.
func IsGeneral(section string) bool {
	section = strings.TrimSpace(section)
	return section == "" || strings.EqualFold(section, confdoc.GeneralTitle)
}

// Resolve splits a dotted path into a section and a key. A path naming an
// existing General entry, or with no section prefix, resolves to the General
// section; otherwise the longest prefix matching a section's root key wins.
func (s *State) Resolve(path string) (section, key string) {
	if gi := s.generalIndex(); gi >= 0 && findEntry(s.Sections[gi].Entries, path) != nil {
		return "", path
	}
	best := -1
	for i, sec := range s.Sections {
		if sec.General {
			continue
		}
		root := sec.RootKey()
		if strings.HasPrefix(path, root+".") && (best < 0 || len(root) > len(s.Sections[best].RootKey())) {
			best = i
		}
	}
	if best < 0 {
		return "", path
	}
	root := s.Sections[best].RootKey()
	return root, strings.TrimPrefix(path, root+".")
}

// Lookup returns the entry for key in section. Dotted keys descend into
// object entries when no entry carries the full key.
func (s *State) Lookup(section, key string) (*confdoc.Entry, bool) {
	i := s.sectionIndex(section)
	if i < 0 {
		return nil, false
	}
	e := findEntry(s.Sections[i].Entries, key)
	return e, e != nil
}

// Set assigns raw to key in section, creating the section and the entry when
// missing. An existing entry keeps its position; its type changes only when
// typ is not empty, except that a null entry takes the type inferred from
// raw. A new entry with an empty typ gets the inferred type. Boolean entries
// only accept "true" or "false" and null entries only "null".
func (s *State) Set(section, key, raw string, typ confdoc.EntryType) error {
	if s.ViewMode == ViewRaw {
		return ErrRawMode
	}
	if strings.TrimSpace(key) == "" {
		return ErrBlankKey
	}
	if typ != "" && (!typ.IsValid() || typ == confdoc.TypeObject) {
		return fmt.Errorf("cannot set %q: unsupported type %q", key, typ)
	}

	var existing *confdoc.Entry
	if i := s.sectionIndex(section); i >= 0 {
		existing = findEntry(s.Sections[i].Entries, key)
	}

	next := confdoc.Entry{Key: key, RawValue: raw, Type: typ}
	if existing != nil {
		next.Key = existing.Key
		if typ == "" {
			switch existing.Type {
			case confdoc.TypeObject:
				return fmt.Errorf("cannot set %q: %w", key, ErrObjectEntry)
			case confdoc.TypeNull:
				next.Type = confdoc.Infer(raw)
			default:
				next.Type = existing.Type
			}
		}
	} else if typ == "" {
		next.Type = confdoc.Infer(raw)
	}
	if err := checkValue(next); err != nil {
		return err
	}
	if _, err := confdoc.BuildNode(next); err != nil {
		return err
	}

	if existing != nil {
		*existing = next
		return nil
	}
	i := s.ensureSection(section)
	s.Sections[i].Entries = append(s.Sections[i].Entries, next)
	return nil
}

// Unset removes key from section. It reports whether an entry was removed.
func (s *State) Unset(section, key string) (bool, error) {
	if s.ViewMode == ViewRaw {
		return false, ErrRawMode
	}
	i := s.sectionIndex(section)
	if i < 0 {
		return false, nil
	}
	return removeEntry(&s.Sections[i].Entries, key), nil
}

// checkValue rejects text the builder would silently coerce: anything but
// true/false for a boolean and anything but null for a null entry.
func checkValue(e confdoc.Entry) error {
	v := strings.TrimSpace(e.RawValue)
	switch e.Type {
	case confdoc.TypeBoolean:
		if v != "true" && v != "false" {
			return fmt.Errorf("cannot set %q to %q: %w (expected true or false)", e.Key, e.RawValue, ErrInvalidValue)
		}
	case confdoc.TypeNull:
		if v != "null" {
			return fmt.Errorf("cannot set %q to %q: %w (expected null)", e.Key, e.RawValue, ErrInvalidValue)
		}
	}
	return nil
}

func (s *State) generalIndex() int {
	for i, sec := range s.Sections {
		if sec.General {
			return i
		}
	}
	return -1
}

func (s *State) sectionIndex(section string) int {
	if IsGeneral(section) {
		return s.generalIndex()
	}
	for i, sec := range s.Sections {
		if !sec.General && sec.RootKey() == section {
			return i
		}
	}
	return -1
}

func (s *State) ensureSection(section string) int {
	if i := s.sectionIndex(section); i >= 0 {
		return i
	}
	if IsGeneral(section) {
		s.Sections = append([]confdoc.Section{confdoc.NewGeneralSection()}, s.Sections...)
		return 0
	}
	s.Sections = append(s.Sections, confdoc.NewSection(section))
	return len(s.Sections) - 1
}

// findEntry matches key exactly first, then descends through object entries
// along dotted prefixes.
func findEntry(entries []confdoc.Entry, key string) *confdoc.Entry {
	for i := range entries {
		if entries[i].Key == key {
			return &entries[i]
		}
	}
	for i := range entries {
		e := &entries[i]
		if e.Type != confdoc.TypeObject {
			continue
		}
		if rest, ok := strings.CutPrefix(key, e.Key+"."); ok {
			if found := findEntry(e.Children, rest); found != nil {
				return found
			}
		}
	}
	return nil
}

func removeEntry(entries *[]confdoc.Entry, key string) bool {
	for i := range *entries {
		if (*entries)[i].Key == key {
			*entries = append((*entries)[:i], (*entries)[i+1:]...)
			return true
		}
	}
	for i := range *entries {
		e := &(*entries)[i]
		if e.Type != confdoc.TypeObject {
			continue
		}
		if rest, ok := strings.CutPrefix(key, e.Key+"."); ok && removeEntry(&e.Children, rest) {
			return true
		}
	}
	return false
}
