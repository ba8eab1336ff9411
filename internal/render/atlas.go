package render

import (
	"errors"
	"image"
	_ "image/png"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"space-horror/internal/gfx"
	"space-horror/pkg/logger"
)

// Atlas лениво загружает спрайт-листы и фоны из каталога ассетов.
// Лист - PNG в одну строку из квадратных кадров: ширина кадра равна высоте листа.
// Отсутствующий файл не ошибка: вместо кадра рисуется плейсхолдер.
type Atlas struct {
	dir string
	log *logrus.Entry

	mu     sync.Mutex
	sheets map[gfx.Sheet][]*ebiten.Image
	images map[string]*ebiten.Image
}

func NewAtlas(dir string) *Atlas {
	return &Atlas{
		dir:    dir,
		log:    logger.For("atlas"),
		sheets: make(map[gfx.Sheet][]*ebiten.Image),
		images: make(map[string]*ebiten.Image),
	}
}

// Frame возвращает кадр листа; индекс берется по модулю числа кадров. nil - листа нет.
func (a *Atlas) Frame(sheet gfx.Sheet, index int) *ebiten.Image {
	a.mu.Lock()
	defer a.mu.Unlock()

	frames, ok := a.sheets[sheet]
	if !ok {
		frames = a.loadSheet(sheet)
		a.sheets[sheet] = frames
	}
	if len(frames) == 0 {
		return nil
	}
	if index < 0 {
		index = 0
	}
	return frames[index%len(frames)]
}

// Image - целое изображение по имени файла (фон уровня). nil - файла нет.
func (a *Atlas) Image(name string) *ebiten.Image {
	a.mu.Lock()
	defer a.mu.Unlock()

	img, ok := a.images[name]
	if !ok {
		img = a.load(name)
		a.images[name] = img
	}
	return img
}

func (a *Atlas) loadSheet(sheet gfx.Sheet) []*ebiten.Image {
	img := a.load(string(sheet) + ".png")
	if img == nil {
		return nil
	}
	b := img.Bounds()
	n := frameCount(b.Dx(), b.Dy())
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		frames[i] = img.SubImage(frameRect(b, i)).(*ebiten.Image)
	}
	return frames
}

func (a *Atlas) load(name string) *ebiten.Image {
	path := filepath.Join(a.dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.log.WithField("path", path).Debug("Asset missing, using placeholder")
		return nil
	case err != nil:
		a.log.WithError(err).WithField("path", path).Warn("Failed to load asset")
		return nil
	}
	return img
}

func frameCount(w, h int) int {
	if h <= 0 || w < h {
		return 1
	}
	return w / h
}

func frameRect(b image.Rectangle, i int) image.Rectangle {
	n := frameCount(b.Dx(), b.Dy())
	fw := b.Dx() / n
	x := b.Min.X + i*fw
	return image.Rect(x, b.Min.Y, x+fw, b.Max.Y)
}

// placeholderColor - цвет прямоугольника вместо отсутствующего листа.
func placeholderColor(sheet gfx.Sheet) gfx.Color {
	switch sheet {
	case gfx.SheetPlayerIdle, gfx.SheetPlayerMove, gfx.SheetPlayerDeath:
		return gfx.Color{R: 70, G: 140, B: 230, A: 255}
	case gfx.SheetMonsterMove, gfx.SheetMonsterAtk:
		return gfx.Red
	case gfx.SheetDoor:
		return gfx.Color{R: 120, G: 90, B: 60, A: 255}
	case gfx.SheetShelve:
		return gfx.Color{R: 100, G: 100, B: 110, A: 255}
	case gfx.SheetCodeTerminal, gfx.SheetChatTerminal, gfx.SheetSaveTerminal:
		return gfx.Green
	case gfx.SheetItem, gfx.SheetNote:
		return gfx.Yellow
	default:
		return gfx.White
	}
}
