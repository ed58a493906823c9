package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"asm09/internal/document"
	"asm09/internal/observ"
	"asm09/internal/source"
	"asm09/internal/trace"
)

// DefaultExtensions are the file suffixes Scan indexes when none are given.
var DefaultExtensions = []string{".asm", ".s", ".a", ".inc", ".def"}

// ScanStatus is the state of one file during a folder scan.
type ScanStatus uint8

const (
	StatusQueued ScanStatus = iota
	StatusReading
	StatusParsing
	StatusDone
	StatusError
)

func (s ScanStatus) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusReading:
		return "reading"
	case StatusParsing:
		return "parsing"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ScanEvent reports progress for one file. An event with an empty URI
// announces the file list in Files.
type ScanEvent struct {
	URI    string
	Status ScanStatus
	Files  []string
}

// ScanOptions tune Scan. Zero values select defaults.
type ScanOptions struct {
	Extensions []string
	Exclude    []string // directory base names to skip
	Jobs       int      // concurrent reads, GOMAXPROCS when <= 0
	Progress   chan<- ScanEvent
}

// ScanResult summarizes a Scan.
type ScanResult struct {
	Files    int
	Parsed   int
	Failed   []string
	Followed int
	Timing   observ.Report
}

// Scan indexes every matching file below the folder root. Reads run in
// parallel; parsing runs in path order so symbol tables are deterministic.
// Files that fail to read are listed in the result and logged, not fatal.
func (f *Folder) Scan(ctx context.Context, opts ScanOptions) (*ScanResult, error) {
	if f.root == "" {
		return nil, fmt.Errorf("scan: folder has no root")
	}
	dir := source.URIToPath(f.root)
	if dir == "" {
		return nil, fmt.Errorf("scan %s: %w", f.root, source.ErrUnsupportedURI)
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeFolder, "folder.scan", 0).WithExtra("root", f.root)
	defer span.End("")

	timer := observ.NewTimer()
	res := &ScanResult{}

	phase := timer.Begin("walk")
	paths, err := listSourceFiles(dir, opts)
	timer.End(phase, fmt.Sprintf("%d files", len(paths)))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", f.root, err)
	}
	res.Files = len(paths)
	uris := make([]string, len(paths))
	for i, p := range paths {
		uris[i] = source.PathToURI(p)
	}
	emit(opts.Progress, ScanEvent{Files: uris})

	phase = timer.Begin("read")
	files, errs := f.readAll(ctx, uris, opts)
	timer.End(phase, "")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	phase = timer.Begin("parse")
	for i, uri := range uris {
		if errs[i] != nil {
			res.Failed = append(res.Failed, uri)
			trace.Log(tr, trace.LevelError, trace.ScopeDocument, "document.read",
				errs[i].Error(), "uri", uri, "reason", document.ReadFailure(errs[i]))
			emit(opts.Progress, ScanEvent{URI: uri, Status: StatusError})
			continue
		}
		emit(opts.Progress, ScanEvent{URI: uri, Status: StatusParsing})
		doc := document.Parse(ctx, files[i], f.symbols)
		if doc == nil {
			return nil, ctx.Err()
		}
		f.store(doc)
		res.Parsed++
		emit(opts.Progress, ScanEvent{URI: uri, Status: StatusDone})
	}
	timer.End(phase, fmt.Sprintf("%d parsed", res.Parsed))

	phase = timer.Begin("references")
	before := len(f.Documents())
	for _, doc := range f.Documents() {
		f.follow(ctx, doc)
	}
	res.Followed = len(f.Documents()) - before
	timer.End(phase, fmt.Sprintf("%d followed", res.Followed))

	res.Timing = timer.Report()
	span.WithExtra("files", fmt.Sprint(res.Files))
	return res, ctx.Err()
}

func (f *Folder) readAll(ctx context.Context, uris []string, opts ScanOptions) ([]*source.File, []error) {
	files := make([]*source.File, len(uris))
	errs := make([]error, len(uris))
	if len(uris) == 0 {
		return files, errs
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// result slots are per index, no lock needed
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(uris)))
	for i, uri := range uris {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit(opts.Progress, ScanEvent{URI: uri, Status: StatusReading})
			files[i], errs[i] = f.reader.Read(gctx, uri)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for i := range errs {
			if files[i] == nil && errs[i] == nil {
				errs[i] = err
			}
		}
	}
	return files, errs
}

func emit(ch chan<- ScanEvent, ev ScanEvent) {
	if ch != nil {
		ch <- ev
	}
}

// listSourceFiles returns the sorted paths below dir with a matching suffix.
func listSourceFiles(dir string, opts ScanOptions) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(d.Name(), ".") || slices.Contains(opts.Exclude, d.Name())) {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if slices.Contains(opts.Extensions, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
