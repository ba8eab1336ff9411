package i18n

import (
	"os"
	"testing"

	"space-horror/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestGet(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		vars []interface{}
		want string
	}{
		{"en", "Back", nil, "Back"},
		{"ru", "Back", nil, "Назад"},
		{"ru", "Health: %d/%d", []interface{}{3, 5}, "Здоровье: 3/5"},
		{"ru", "Key without translation", nil, "Key without translation"},
		{"ru", "Missing %s", []interface{}{"vars"}, "Missing vars"},
		{"de", "Back", nil, "Back"},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.key, func(t *testing.T) {
			c := Load(tt.lang)
			if got := c.Get(tt.key, tt.vars...); got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestNextCyclesLanguages(t *testing.T) {
	c := Load("en")
	if got := c.Next(); got != "ru" {
		t.Errorf("Next() = %q, want ru", got)
	}
	if got := c.Next(); got != "en" {
		t.Errorf("Next() = %q, want en", got)
	}
	if c.Language() != "en" {
		t.Errorf("Language() = %q", c.Language())
	}
}

func TestNilCatalogFallsBackToKey(t *testing.T) {
	var c *Catalog
	if got := c.Get("Used %s", "Medkit"); got != "Used Medkit" {
		t.Errorf("nil catalog Get = %q", got)
	}
	if got := (Identity{}).Get("Back"); got != "Back" {
		t.Errorf("Identity Get = %q", got)
	}
}
