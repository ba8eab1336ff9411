// Package i18n - локализация строк интерфейса через gettext-каталоги.
// Ключом служит английская строка: если перевода нет, возвращается сам ключ.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"

	"space-horror/pkg/logger"
)

//go:embed locales/*.po
var catalogs embed.FS

// Languages - поддерживаемые языки в порядке переключения в настройках.
var Languages = []string{"en", "ru"}

// Catalog хранит загруженные переводы и текущий язык.
type Catalog struct {
	mu      sync.RWMutex
	lang    string
	domains map[string]*gotext.Po
}

// Load загружает встроенные каталоги. Язык без каталога работает на ключах.
func Load(lang string) *Catalog {
	c := &Catalog{domains: make(map[string]*gotext.Po)}
	for _, l := range Languages {
		data, err := catalogs.ReadFile(fmt.Sprintf("locales/%s.po", l))
		if err != nil {
			logger.For("i18n").WithError(err).Warnf("catalog %s not found", l)
			continue
		}
		po := gotext.NewPo()
		po.Parse(data)
		c.domains[l] = po
	}
	c.SetLanguage(lang)
	return c
}

func (c *Catalog) SetLanguage(lang string) {
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
}

func (c *Catalog) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// Get возвращает перевод key с подстановкой vars (в стиле fmt).
func (c *Catalog) Get(key string, vars ...interface{}) string {
	if c == nil {
		return format(key, vars...)
	}
	c.mu.RLock()
	po := c.domains[c.lang]
	c.mu.RUnlock()
	if po == nil {
		return format(key, vars...)
	}
	return po.Get(key, vars...)
}

// Next переключает язык на следующий из Languages.
func (c *Catalog) Next() string {
	cur := c.Language()
	next := Languages[0]
	for i, l := range Languages {
		if l == cur {
			next = Languages[(i+1)%len(Languages)]
			break
		}
	}
	c.SetLanguage(next)
	return next
}

func format(key string, vars ...interface{}) string {
	if len(vars) == 0 {
		return key
	}
	return fmt.Sprintf(key, vars...)
}

// Translator - то, что нужно экранам и сущностям от локализации.
type Translator interface {
	Get(key string, vars ...interface{}) string
}

// Identity - переводчик без каталогов, для тестов.
type Identity struct{}

func (Identity) Get(key string, vars ...interface{}) string { return format(key, vars...) }
