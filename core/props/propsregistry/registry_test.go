package propsregistry

import (
	"strings"
	"testing"

	"github.com/npillmayer/fontprops/core/props"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeModel(t *testing.T, src string) *props.Model {
	t.Helper()
	stmts, err := props.Scan(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	m, err := props.Normalize(props.Validate(stmts))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

const testProps = `default.char=65
inputtextcharset=ANSI_CHARSET
dialog.0=Arial,ANSI_CHARSET
dialoginput.0=Courier,ANSI_CHARSET
serif.0=Georgia,ANSI_CHARSET
`

func TestRegistryStoreAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.registry")
	defer teardown()
	//
	r := NewRegistry()
	m := makeModel(t, testProps)
	r.StoreModel("test.properties", m)
	got, ok := r.Model("test.properties")
	if !ok || got != m {
		t.Errorf("expected to get back the stored model")
	}
	if _, ok := r.Model("nosuch.properties"); ok {
		t.Errorf("expected lookup of unknown name to fail")
	}
}

func TestRegistryNoOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.registry")
	defer teardown()
	//
	r := NewRegistry()
	first := makeModel(t, testProps)
	second := makeModel(t, testProps)
	r.StoreModel("test.properties", first)
	r.StoreModel("test.properties", second)
	got, _ := r.Model("test.properties")
	if got != first {
		t.Errorf("a stored model must not be overridden")
	}
}

func TestRegistrySuggestFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.registry")
	defer teardown()
	//
	r := NewRegistry()
	r.StoreModel("test.properties", makeModel(t, testProps))
	if s := r.SuggestFamilies("test.properties", "dialog"); s != nil {
		t.Errorf("no suggestions for a known family, have %v", s)
	}
	s := r.SuggestFamilies("test.properties", "dial")
	if len(s) != 2 || s[0] != "dialog" || s[1] != "dialoginput" {
		t.Errorf("expected prefix matches [dialog dialoginput], have %v", s)
	}
	if s := r.SuggestFamilies("nosuch.properties", "dialog"); s != nil {
		t.Errorf("no suggestions for an unknown model, have %v", s)
	}
}

func TestGlobalRegistryIsSingleton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontprops.registry")
	defer teardown()
	//
	if GlobalRegistry() != GlobalRegistry() {
		t.Errorf("expected GlobalRegistry to return the same instance")
	}
}
