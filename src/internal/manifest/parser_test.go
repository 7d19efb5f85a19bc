package manifest

import (
	"errors"
	"strings"
	"testing"
)

const giftManifest = `
[package]
name = "not-a-gift-order"
authors = ["Not Santa"]
keywords = ["Christmas 2024"]

[package.metadata]
orders = [
    { item = "Toy car", quantity = 2 },
    { item = "Lego brick", quantity = 230 },
]
`

func newTestParser(t *testing.T, lineTemplate string) *Parser {
	t.Helper()

	p, err := NewParser(lineTemplate)
	if err != nil {
		t.Fatalf("NewParser(%q) failed: %v", lineTemplate, err)
	}
	return p
}

func TestParse_TOML(t *testing.T) {
	p := newTestParser(t, "")

	m, err := p.Parse("application/toml", []byte(giftManifest))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []Order{{Item: "Toy car", Quantity: 2}, {Item: "Lego brick", Quantity: 230}}
	got := m.Orders()
	if len(got) != len(want) {
		t.Fatalf("Expected %d orders, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Order %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if rendered := p.Render(m); rendered != "Toy car: 2\nLego brick: 230" {
		t.Errorf("Unexpected rendering: %q", rendered)
	}
}

func TestParse_TableArrayOrders(t *testing.T) {
	p := newTestParser(t, "")

	doc := `
[[package.metadata.orders]]
item = "A"
quantity = 1

[[package.metadata.orders]]
item = "B"
quantity = 2
`
	m, err := p.Parse("application/toml; charset=utf-8", []byte(doc))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if rendered := p.Render(m); rendered != "A: 1\nB: 2" {
		t.Errorf("Expected %q, got %q", "A: 1\nB: 2", rendered)
	}
}

func TestParse_EmptyOrders(t *testing.T) {
	p := newTestParser(t, "")

	tests := []struct {
		name string
		doc  string
	}{
		{"empty array", "[package.metadata]\norders = []\n"},
		{"empty array with other keys", "[package]\nname = \"x\"\n[package.metadata]\nnote = \"nothing\"\norders = []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := p.Parse("application/toml", []byte(tt.doc))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !m.IsEmpty() {
				t.Errorf("Expected empty manifest, got %d orders", m.Len())
			}
			if rendered := p.Render(m); rendered != "" {
				t.Errorf("Expected empty rendering, got %q", rendered)
			}
		})
	}
}

func TestParse_InvalidManifest(t *testing.T) {
	p := newTestParser(t, "")

	tests := []struct {
		name    string
		doc     string
		message string
	}{
		{
			name: "syntax error",
			doc:  "[package\nname = 1",
		},
		{
			name:    "missing package",
			doc:     "title = \"x\"\n",
			message: "package: field is required",
		},
		{
			name:    "missing metadata",
			doc:     "[package]\nname = \"x\"\n",
			message: "package.metadata: field is required",
		},
		{
			name:    "missing orders",
			doc:     "[package.metadata]\n",
			message: "package.metadata.orders: field is required",
		},
		{
			name:    "missing orders with other keys",
			doc:     "[package]\nname = \"x\"\n[package.metadata]\nnote = \"nothing\"\n",
			message: "package.metadata.orders: field is required",
		},
		{
			name:    "missing quantity",
			doc:     "[package.metadata]\norders = [{ item = \"A\" }]\n",
			message: "package.metadata.orders[0].quantity: field is required",
		},
		{
			name:    "missing item",
			doc:     "[package.metadata]\norders = [{ item = \"A\", quantity = 1 }, { quantity = 2 }]\n",
			message: "package.metadata.orders[1].item: field is required",
		},
		{
			name: "wrong quantity type",
			doc:  "[package.metadata]\norders = [{ item = \"A\", quantity = \"lots\" }]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := p.Parse("application/toml", []byte(tt.doc))
			if err == nil {
				t.Fatalf("Expected error, got manifest with %d orders", m.Len())
			}
			if !errors.Is(err, ErrInvalidManifest) {
				t.Errorf("Expected ErrInvalidManifest, got %v", err)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected error to contain %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestParse_MediaTypes(t *testing.T) {
	p := newTestParser(t, "")

	tests := []struct {
		name        string
		contentType string
		expected    error
	}{
		{"json is not implemented", "application/json", ErrNotImplemented},
		{"json with charset", "application/json; charset=utf-8", ErrNotImplemented},
		{"plain text", "text/plain", ErrUnsupportedMediaType},
		{"yaml", "application/yaml", ErrUnsupportedMediaType},
		{"empty", "", ErrUnsupportedMediaType},
		{"garbage", ";;;", ErrUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.contentType, []byte(giftManifest))
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestParse_MediaTypeCaseInsensitive(t *testing.T) {
	p := newTestParser(t, "")

	if _, err := p.Parse("Application/TOML", []byte(giftManifest)); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name         string
		lineTemplate string
		manifest     *Manifest
		expected     string
	}{
		{
			name:     "two orders",
			manifest: New(Order{"A", 1}, Order{"B", 2}),
			expected: "A: 1\nB: 2",
		},
		{
			name:     "single order has no newline",
			manifest: New(Order{"Toy car", 0}),
			expected: "Toy car: 0",
		},
		{
			name:     "empty manifest",
			manifest: New(),
			expected: "",
		},
		{
			name:         "custom template",
			lineTemplate: "{{quantity}}x {{item}}",
			manifest:     New(Order{"A", 1}, Order{"B", 4294967295}),
			expected:     "1x A\n4294967295x B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, tt.lineTemplate)
			if got := p.Render(tt.manifest); got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewParser_InvalidTemplate(t *testing.T) {
	if _, err := NewParser("{{item"); err == nil {
		t.Error("Expected error for unterminated template tag")
	}
}

func TestManifestOrdersIsCopy(t *testing.T) {
	m := New(Order{"A", 1})
	orders := m.Orders()
	orders[0].Item = "changed"

	if m.Orders()[0].Item != "A" {
		t.Error("Expected manifest to be unaffected by changes to returned orders")
	}
}
