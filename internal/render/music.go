package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"

	"space-horror/pkg/logger"
)

const (
	sampleRate  = 44100
	musicVolume = 0.5
)

// PlayMusic запускает бесконечный цикл Ogg Vorbis. Нет файла - тишина, это не ошибка.
func PlayMusic(path string) (*audio.Player, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.For("music").WithField("path", path).Info("Music file not found, playing silence")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read music %s: %w", path, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("create music player: %w", err)
	}
	player.SetVolume(musicVolume)
	player.Play()
	return player, nil
}
