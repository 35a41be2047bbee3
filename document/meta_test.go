package document

import (
	"bytes"
	"context"
	"testing"
)

func TestMetaOrder(t *testing.T) {
	m := NewMeta()
	m.Set("Description", "one")
	m.Set("robots", "index")
	m.Set("Description", "two")

	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "Description" || keys[1] != "robots" {
		t.Fatalf("Keys() = %v, want [Description robots]", keys)
	}
	if v, _ := m.Get("Description"); v != "two" {
		t.Errorf("Description = %q, want two", v)
	}
}

func TestMetaDelete(t *testing.T) {
	m := NewMeta()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")
	m.Delete("b")
	m.Delete("missing")

	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Errorf("Keys() = %v, want [a c]", keys)
	}
	if _, ok := m.Get("b"); ok {
		t.Error("b should be deleted")
	}
}

func TestRenderMeta(t *testing.T) {
	m := NewMeta()
	m.Set("Description", `Fish & "chips"`)
	m.Set("google-site-verification", "token")

	got := RenderMeta(m)
	want := `<meta name="Description" content="Fish &amp; &#34;chips&#34;"/>` + "\n" +
		`<meta name="google-site-verification" content="token"/>` + "\n"
	if got != want {
		t.Errorf("RenderMeta() = %q, want %q", got, want)
	}
}

func TestRenderMetaEmpty(t *testing.T) {
	var m Meta
	if got := RenderMeta(&m); got != "" {
		t.Errorf("RenderMeta() = %q, want empty", got)
	}
}

func TestHead(t *testing.T) {
	m := NewMeta()
	m.Set("Description", "About")

	var buf bytes.Buffer
	err := Head("Tom & Jerry", m, `<link rel="canonical" href="https://example.com/" />`+"\n").Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "<title>Tom &amp; Jerry</title>\n" +
		`<meta name="Description" content="About"/>` + "\n" +
		`<link rel="canonical" href="https://example.com/" />` + "\n"
	if buf.String() != want {
		t.Errorf("Head = %q, want %q", buf.String(), want)
	}
}
