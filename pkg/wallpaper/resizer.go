package wallpaper

import (
	"errors"
	"fmt"

	"github.com/dixieflatline76/Tapetovac/config"
	"github.com/dixieflatline76/Tapetovac/util/log"
)

// ErrTrash marks a failure to move a converted original to the trash.
// The resized output is kept when this happens.
var ErrTrash = errors.New("moving original to trash")

// Trasher moves a file somewhere it can be recovered from.
type Trasher interface {
	Trash(path string) error
}

// Outcome is what happened to a single source file.
type Outcome int

// Outcome constants
const (
	Converted Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result reports the processing of one source file.
// Err is set for Failed results and for Converted results whose original
// could not be trashed.
type Result struct {
	Path    string
	Output  string
	Outcome Outcome
	Err     error
}

// Summary collects the results of a batch in processing order.
type Summary struct {
	Results     []Result
	Converted   int
	Skipped     int
	Failed      int
	TrashFailed int
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case Converted:
		s.Converted++
		if r.Err != nil {
			s.TrashFailed++
		}
	case Skipped:
		s.Skipped++
	case Failed:
		s.Failed++
	}
}

// Resizer converts source JPEGs into wallpaper canvases, one file at a time.
type Resizer struct {
	cfg     config.Config
	fm      *FileManager
	trasher Trasher
}

// NewResizer creates a Resizer for cfg. trasher is only used when
// cfg.TrashAfterResize is set and may be nil otherwise.
func NewResizer(cfg config.Config, trasher Trasher) *Resizer {
	return &Resizer{
		cfg:     cfg,
		fm:      NewFileManager(cfg.ResizedSuffix, cfg.Quality),
		trasher: trasher,
	}
}

// ResizeAll processes every JPEG in dir in name order. A failing file is
// logged and recorded; the batch carries on with the next one.
func (r *Resizer) ResizeAll(dir string) (Summary, error) {
	log.Print("Resizing all JPGs...")

	files, err := r.fm.ListJPEGs(dir)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, path := range files {
		summary.add(r.ResizeSingle(path))
	}
	return summary, nil
}

// ResizeSingle converts one file and, when configured, trashes the original
// after the output has been written. Errors are logged and returned in the
// Result rather than propagated.
func (r *Resizer) ResizeSingle(path string) Result {
	res := Result{Path: path}

	output, converted, err := r.resize(path)
	switch {
	case err != nil:
		res.Outcome = Failed
		res.Err = err
		log.Printf("%s: %v", path, err)
		return res
	case !converted:
		res.Outcome = Skipped
		log.Debugf("Skipping %s: already converted", path)
		return res
	}

	res.Outcome = Converted
	res.Output = output

	if r.cfg.TrashAfterResize {
		if err := r.trash(path); err != nil {
			res.Err = err
			log.Printf("%s: %v", path, err)
		}
	}
	return res
}

// resize returns the output path and true when path was converted, or false
// when it was skipped.
func (r *Resizer) resize(path string) (string, bool, error) {
	if r.fm.IsAlreadyConverted(path) {
		return "", false, nil
	}
	log.Printf("Resizing %s", path)

	src, err := r.fm.Decode(path)
	if err != nil {
		return "", false, err
	}

	canvas, _, err := Fit(src, r.cfg)
	if err != nil {
		return "", false, fmt.Errorf("fitting %s: %w", path, err)
	}

	output := r.fm.ResizedPath(path)
	if err := r.fm.Encode(canvas, output); err != nil {
		return "", false, err
	}
	return output, true, nil
}

func (r *Resizer) trash(path string) error {
	if r.trasher == nil {
		return fmt.Errorf("%w: no trash service configured", ErrTrash)
	}
	if err := r.trasher.Trash(path); err != nil {
		return fmt.Errorf("%w: %w", ErrTrash, err)
	}
	return nil
}
