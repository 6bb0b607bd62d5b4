package beatmap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"beatmap-reader/schema"
)

// InfoFilenames are the set metadata file names tried by LoadSet, in order.
var InfoFilenames = []string{"Info.dat", "info.dat"}

const defaultConcurrency = 4

// Set is a beatmap set directory with every listed difficulty loaded.
type Set struct {
	Dir          string
	InfoPath     string
	Meta         *BeatmapSetMeta
	Difficulties []LoadedDifficulty
}

// LoadedDifficulty is one difficulty of a Set. Err is set, and Beatmap nil,
// when the file could not be read or matched neither layout.
type LoadedDifficulty struct {
	Characteristic string
	Meta           BeatmapMeta
	Path           string
	Format         schema.Format
	Beatmap        *Beatmap
	Err            error
}

// Err joins the errors of every difficulty that failed to load.
func (s *Set) Err() error {
	var errs []error
	for _, d := range s.Difficulties {
		if d.Err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", d.Characteristic, d.Meta.Difficulty, d.Err))
		}
	}

	return errors.Join(errs...)
}

type LoadOption func(*loadOptions)

type loadOptions struct {
	logger      *slog.Logger
	concurrency int
}

// WithLogger sets the logger for load progress. The default discards.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency bounds the number of difficulty files decoded at once.
// Values below 1 are ignored.
func WithConcurrency(n int) LoadOption {
	return func(o *loadOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// LoadSet reads the set metadata in dir and every difficulty file it lists.
// Only a missing or malformed metadata file, or ctx being done, fails the
// call; difficulty failures are recorded on the returned Set.
func LoadSet(ctx context.Context, dir string, opts ...LoadOption) (*Set, error) {
	o := loadOptions{
		logger:      slog.New(slog.DiscardHandler),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}

	infoPath, err := findInfo(dir)
	if err != nil {
		return nil, err
	}

	meta, err := ReadSetMetaFile(infoPath)
	if err != nil {
		return nil, err
	}

	set := &Set{Dir: dir, InfoPath: infoPath, Meta: meta}
	for _, ds := range meta.DifficultySets {
		for _, bm := range ds.Beatmaps {
			set.Difficulties = append(set.Difficulties, LoadedDifficulty{
				Characteristic: ds.GameMode,
				Meta:           bm,
				Path:           filepath.Join(dir, bm.Filename),
			})
		}
	}

	o.logger.Info("loading beatmap set",
		"dir", dir,
		"song", meta.SongName,
		"difficulties", len(set.Difficulties),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i := range set.Difficulties {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			loadDifficulty(&set.Difficulties[i], o.logger)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load set %s: %w", dir, err)
	}

	return set, nil
}

func findInfo(dir string) (string, error) {
	for _, name := range InfoFilenames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", &ReadError{Path: filepath.Join(dir, InfoFilenames[len(InfoFilenames)-1]), Err: fs.ErrNotExist}
}

func loadDifficulty(d *LoadedDifficulty, logger *slog.Logger) {
	start := time.Now()

	data, err := readFile(d.Path)
	if err != nil {
		d.Err = err
		logger.Warn("difficulty file unreadable", "path", d.Path, "error", err)

		return
	}

	file, err := schema.Detect(data)
	if err != nil {
		d.Err = err
		logger.Warn("difficulty file matches no layout", "path", d.Path, "error", err)

		return
	}

	d.Format = file.Format()
	d.Beatmap = Normalize(file)

	logger.Debug("difficulty loaded",
		"path", d.Path,
		"format", d.Format,
		"events", len(d.Beatmap.Events),
		"elapsed", time.Since(start),
	)
}
