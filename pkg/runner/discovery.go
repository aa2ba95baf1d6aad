package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// Discover finds ley files matching opts.
// It returns a deduplicated, sorted list of absolute file paths.
//
// Explicitly named files are included whenever they pass the glob filters,
// even without a matching extension; directories are walked for files with
// one of the configured extensions. Hidden files and directories are skipped
// during walks.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	exclude, err := compilePatterns(opts.ExcludeGlobs)
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	include, err := compilePatterns(opts.IncludeGlobs)
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}

	d := &discoverer{
		workDir:        workDir,
		extensions:     opts.effectiveExtensions(),
		exclude:        exclude,
		include:        include,
		followSymlinks: opts.FollowSymlinks,
		seen:           make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := d.walk(ctx, absPath); err != nil {
				return nil, err
			}
			continue
		}

		if d.selected(absPath) {
			d.add(absPath)
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

type discoverer struct {
	workDir        string
	extensions     []string
	exclude        patternSet
	include        patternSet
	followSymlinks bool

	seen  map[string]struct{}
	files []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// selected applies the include and exclude patterns to a file.
func (d *discoverer) selected(path string) bool {
	rel := d.rel(path)
	if d.exclude.match(rel) {
		return false
	}
	return len(d.include) == 0 || d.include.match(rel)
}

func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if path != root && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if path != root && d.exclude.matchDir(d.rel(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.symlink(ctx, path)
		}

		if hasExtension(path, d.extensions) && d.selected(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink resolves a symlink found during a walk. Broken links are skipped;
// directory links are walked only with FollowSymlinks.
func (d *discoverer) symlink(ctx context.Context, path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // broken symlinks are skipped
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // inaccessible targets are skipped
	}

	if info.IsDir() {
		if !d.followSymlinks {
			return nil
		}
		// Walk the target, not the link; WalkDir does not descend into a link root.
		return d.walk(ctx, target)
	}

	if hasExtension(path, d.extensions) && d.selected(path) {
		d.add(path)
	}
	return nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// pattern is a compiled glob. Patterns without a '/' match the base name
// of a path at any depth; others match the whole slash-separated path
// relative to the working directory, with "**" spanning directories.
type pattern struct {
	g        glob.Glob
	baseOnly bool
}

type patternSet []pattern

func compilePatterns(raw []string) (patternSet, error) {
	set := make(patternSet, 0, len(raw))
	for _, p := range raw {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", p, err)
		}
		set = append(set, pattern{g: g, baseOnly: !strings.Contains(p, "/")})
	}
	return set, nil
}

func (s patternSet) match(rel string) bool {
	base := rel[strings.LastIndex(rel, "/")+1:]
	for _, p := range s {
		if p.baseOnly && p.g.Match(base) {
			return true
		}
		if p.g.Match(rel) {
			return true
		}
	}
	return false
}

// matchDir reports whether a directory is excluded, so "vendor/**" prunes
// the vendor directory itself.
func (s patternSet) matchDir(rel string) bool {
	return s.match(rel) || s.match(rel+"/")
}
