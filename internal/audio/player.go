package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrNoAsset           = errors.New("no sound asset loaded")
)

// Player is a Backend that decodes sound files into memory once and plays
// a fresh copy of the samples for every cue.
type Player struct {
	volume   float64
	format   beep.Format
	initDone bool
	shared   *beep.Buffer
	perCue   map[Cue]*beep.Buffer
}

// NewPlayer returns a Player that plays at the given linear volume.
func NewPlayer(volume float64) *Player {
	return &Player{
		volume: volume,
		perCue: map[Cue]*beep.Buffer{},
	}
}

// Load decodes path and uses it for every cue without its own asset.
func (p *Player) Load(path string) error {
	buf, err := p.load(path)
	if err != nil {
		return err
	}
	p.shared = buf
	return nil
}

// SetAsset decodes path and uses it for cue only.
func (p *Player) SetAsset(cue Cue, path string) error {
	buf, err := p.load(path)
	if err != nil {
		return err
	}
	p.perCue[cue] = buf
	return nil
}

// Play starts the cue's samples on the speaker and returns immediately.
func (p *Player) Play(cue Cue) error {
	buf := p.perCue[cue]
	if buf == nil {
		buf = p.shared
	}
	if buf == nil {
		return ErrNoAsset
	}
	speaker.Play(p.withVolume(buf.Streamer(0, buf.Len())))
	return nil
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(p.volume),
		Silent:   p.volume <= 0,
	}
}

func (p *Player) load(path string) (*beep.Buffer, error) {
	streamer, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	// The speaker runs at the rate of the first asset; later assets are resampled.
	if !p.initDone {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
			return nil, fmt.Errorf("init speaker: %w", err)
		}
		p.format = format
		p.initDone = true
	}

	var src beep.Streamer = streamer
	if format.SampleRate != p.format.SampleRate {
		src = beep.Resample(4, format.SampleRate, p.format.SampleRate, streamer)
	}
	buf := beep.NewBuffer(p.format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// decodeFile opens path and picks a decoder by extension. Closing the
// returned streamer closes the file.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return streamer, format, nil
}
