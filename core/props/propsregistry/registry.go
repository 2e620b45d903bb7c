package propsregistry

import (
	"sort"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/fontprops/core/props"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding normalized font-mapping models, keyed by
// a caller-chosen name (usually the configuration file path). Models are
// immutable, so handing them out by reference is safe.
type Registry struct {
	sync.Mutex
	models   map[string]*props.Model
	famnames map[string]*trie.Trie
}

var globalModelRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold normalized
// font-mapping models.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalModelRegistry = NewRegistry()
	})
	return globalModelRegistry
}

func NewRegistry() *Registry {
	r := &Registry{
		models:   make(map[string]*props.Model),
		famnames: make(map[string]*trie.Trie),
	}
	return r
}

// StoreModel pushes a model into the registry if it isn't contained yet.
// If the key is already associated with a model, that model will not be
// overridden. Family names of the model are indexed for suggestions.
func (r *Registry) StoreModel(name string, m *props.Model) {
	if m == nil {
		tracer().Errorf("registry cannot store null model")
		return
	}
	r.Lock()
	defer r.Unlock()
	if _, ok := r.models[name]; ok {
		return
	}
	tracer().Debugf("registry stores model %s with %d families", name, len(m.Families))
	r.models[name] = m
	index := trie.New()
	for family := range m.Families {
		index.Add(family, nil)
	}
	r.famnames[name] = index
}

// Model returns a previously stored model.
func (r *Registry) Model(name string) (*props.Model, bool) {
	r.Lock()
	defer r.Unlock()
	m, ok := r.models[name]
	return m, ok
}

// SuggestFamilies proposes family names close to an unknown family, for
// 'did you mean' style diagnostics. Returns nil if the family exists in
// the model.
func (r *Registry) SuggestFamilies(name string, family string) []string {
	r.Lock()
	index, ok := r.famnames[name]
	r.Unlock()
	if !ok {
		return nil
	}
	if _, found := index.Find(family); found {
		return nil
	}
	suggestions := index.PrefixSearch(family)
	if len(suggestions) == 0 {
		suggestions = index.FuzzySearch(family)
	}
	sort.Strings(suggestions)
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	tracer().Debugf("suggesting %v for unknown family '%s'", suggestions, family)
	return suggestions
}

// LogModelList is a helper function to dump the list of known models and
// their families to the trace-file (log-level Info).
func (r *Registry) LogModelList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered models ---")
	r.Lock()
	for k, m := range r.models {
		tracer().Infof("model [%s] = %d families, %d exclusion sets",
			k, len(m.Families), len(m.Exclusions))
	}
	r.Unlock()
	tracer().Infof("-------------------------")
	tracer().SetTraceLevel(level)
}
