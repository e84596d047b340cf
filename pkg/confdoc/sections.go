package confdoc

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GeneralTitle is the title of the catch-all section holding root scalars.
const GeneralTitle = "General"

// Entry is the editable projection of one key/value pair. Children is set
// only for TypeObject entries.
type Entry struct {
	Key      string    `json:"key"`
	RawValue string    `json:"rawValue"`
	Type     EntryType `json:"type"`
	Children []Entry   `json:"children,omitempty"`
}

// Section is a named, collapsible group of entries. The General section holds
// root-level scalars; every other section corresponds to a root key whose
// value is a map, and Key holds that root key verbatim.
type Section struct {
	Key       string  `json:"key,omitempty"`
	Title     string  `json:"title"`
	General   bool    `json:"general,omitempty"`
	Entries   []Entry `json:"entries"`
	Collapsed bool    `json:"collapsed"`
}

// NewEntry projects key and n onto an Entry. Maps become object entries
// whose children mirror the map at every depth.
func NewEntry(key string, n Node) Entry {
	if m, ok := n.(*Map); ok {
		return Entry{Key: key, Type: TypeObject, Children: entriesOf(m)}
	}
	return Entry{Key: key, RawValue: ScalarText(n), Type: TypeOf(n)}
}

func entriesOf(m *Map) []Entry {
	entries := make([]Entry, 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, NewEntry(k, v))
	}
	return entries
}

// NewGeneralSection returns an empty, expanded General section.
func NewGeneralSection() Section {
	return Section{Title: GeneralTitle, General: true, Entries: []Entry{}}
}

// NewSection returns an empty, collapsed section for the root key key.
func NewSection(key string) Section {
	return Section{Key: key, Title: SectionTitle(key), Entries: []Entry{}, Collapsed: true}
}

// RootKey returns the root key a non-General section is written under:
// Key when set, otherwise the title.
func (s Section) RootKey() string {
	if strings.TrimSpace(s.Key) != "" {
		return s.Key
	}
	return s.Title
}

// Lookup returns the entry stored under key, or nil.
func (s *Section) Lookup(key string) *Entry {
	for i := range s.Entries {
		if s.Entries[i].Key == key {
			return &s.Entries[i]
		}
	}
	return nil
}

// SectionTitle turns a root key into a display title: separators become
// spaces and words are capitalized ("spawn_settings" becomes "Spawn
// Settings"). A title that would read "General" is qualified with the key so
// it cannot be mistaken for the General section.
func SectionTitle(key string) string {
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(key))
	title := cases.Title(language.Und, cases.NoLower).String(strings.Join(words, " "))
	if title == "" {
		title = key
	}
	if strings.EqualFold(title, GeneralTitle) {
		title = fmt.Sprintf("%s (%s)", GeneralTitle, key)
	}
	return title
}

// ToSections projects m onto display sections.
//
// Every root key holding a map becomes its own collapsed section, in document
// order. Root scalars are gathered, in order, into a single expanded General
// section placed first. The General section is omitted when there are no
// root scalars but at least one map section; an empty map yields a single
// empty General section. Every root key lands in exactly one section.
func ToSections(m *Map) []Section {
	general := NewGeneralSection()
	var named []Section
	for k, v := range m.All() {
		if sub, ok := v.(*Map); ok {
			s := NewSection(k)
			s.Entries = entriesOf(sub)
			named = append(named, s)
			continue
		}
		general.Entries = append(general.Entries, NewEntry(k, v))
	}
	if len(general.Entries) == 0 && len(named) > 0 {
		return named
	}
	return append([]Section{general}, named...)
}
