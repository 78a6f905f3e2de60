package generator

import (
	"go/types"
	"slices"
	"strconv"
	"strings"
)

// RuntimePath is the import path of the package defining fieldtag.Field.
const RuntimePath = "github.com/calumari/fieldtag"

// importSet assigns local names to the packages referenced by field types.
type importSet struct {
	self     *types.Package
	byPath   map[string]importEntry
	taken    map[string]bool
	reserved func(name string) bool // names declared at package scope
}

type importEntry struct {
	name  string
	alias bool
	used  bool
}

func newImportSet(self *types.Package, reserved func(string) bool) *importSet {
	return &importSet{
		self:     self,
		byPath:   make(map[string]importEntry),
		taken:    make(map[string]bool),
		reserved: reserved,
	}
}

func (s *importSet) isReserved(name string) bool {
	return s.reserved != nil && s.reserved(name)
}

// local returns the name under which path is imported, picking a numbered
// alias when name is already in use.
func (s *importSet) local(path, name string) string {
	if e, ok := s.byPath[path]; ok {
		return e.name
	}
	local := name
	for i := 2; s.taken[local] || s.isReserved(local); i++ {
		local = name + strconv.Itoa(i)
	}
	s.taken[local] = true
	s.byPath[path] = importEntry{name: local, alias: local != name}
	return local
}

// reserve keeps name from being picked as an import name.
func (s *importSet) reserve(name string) {
	s.taken[name] = true
}

// use marks path as referenced by the generated code.
func (s *importSet) use(path string) {
	if e, ok := s.byPath[path]; ok {
		e.used = true
		s.byPath[path] = e
	}
}

// qualifier is a types.Qualifier recording every package it is asked about.
func (s *importSet) qualifier(p *types.Package) string {
	if p == nil || p == s.self || (s.self != nil && p.Path() == s.self.Path()) {
		return ""
	}
	name := s.local(p.Path(), p.Name())
	s.use(p.Path())
	return name
}

// list returns the used imports sorted by path.
func (s *importSet) list() []importModel {
	var out []importModel
	for path, e := range s.byPath {
		if !e.used {
			continue
		}
		im := importModel{Path: path}
		if e.alias {
			im.Alias = e.name
		}
		out = append(out, im)
	}
	slices.SortFunc(out, func(a, b importModel) int { return strings.Compare(a.Path, b.Path) })
	return out
}
