package codebase

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"
	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/javaslice/java"
	"github.com/dhamidi/javaslice/java/parser"
)

var log = commonlog.GetLogger("javaslice.codebase")

const DefaultResolveCacheSize = 4096

type Option func(*Codebase) error

// WithInclude restricts scanning to files whose root-relative path matches
// one of the glob patterns.
func WithInclude(patterns ...string) Option {
	return func(c *Codebase) error {
		gs, err := compileGlobs(patterns)
		if err != nil {
			return err
		}
		c.include = append(c.include, gs...)
		return nil
	}
}

func WithExclude(patterns ...string) Option {
	return func(c *Codebase) error {
		gs, err := compileGlobs(patterns)
		if err != nil {
			return err
		}
		c.exclude = append(c.exclude, gs...)
		return nil
	}
}

// WithGitignore skips files matched by the root's .gitignore.
func WithGitignore(enabled bool) Option {
	return func(c *Codebase) error {
		c.respectGitignore = enabled
		return nil
	}
}

func WithWorkers(n int) Option {
	return func(c *Codebase) error {
		if n > 0 {
			c.workers = n
		}
		return nil
	}
}

func WithResolveCacheSize(n int) Option {
	return func(c *Codebase) error {
		if n > 0 {
			c.cacheSize = n
		}
		return nil
	}
}

type Codebase struct {
	mu sync.RWMutex
	// updates is held for writing while a change is applied and for
	// reading by View.
	updates          sync.RWMutex
	rootDir          string
	include          []glob.Glob
	exclude          []glob.Glob
	respectGitignore bool
	ignore           *gitignore.GitIgnore
	workers          int
	cacheSize        int

	files map[string]*FileInfo
	types map[string]*java.TypeDecl
	// subtypes maps a type to the types that name it in their extends or
	// implements clause.
	subtypes map[string][]*java.TypeDecl
	inner    java.InnerTypeIndex
	cache    *lru.Cache[resolveKey, java.Resolution]
}

type FileInfo struct {
	Path    string
	Content []byte
	Unit    *java.SourceUnit
	Errors  []parser.SyntaxError
}

func New(rootDir string, opts ...Option) (*Codebase, error) {
	c := &Codebase{
		rootDir:   rootDir,
		workers:   runtime.NumCPU(),
		cacheSize: DefaultResolveCacheSize,
		files:     make(map[string]*FileInfo),
		types:     make(map[string]*java.TypeDecl),
		subtypes:  make(map[string][]*java.TypeDecl),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	cache, err := lru.New[resolveKey, java.Resolution](c.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("resolve cache: %w", err)
	}
	c.cache = cache
	if c.respectGitignore {
		c.ignore = loadGitignore(rootDir)
	}
	return c, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	gs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compile glob %q: %w", p, err)
		}
		gs = append(gs, g)
	}
	return gs, nil
}

func loadGitignore(rootDir string) *gitignore.GitIgnore {
	lines := []string{".git/"}
	data, err := os.ReadFile(filepath.Join(rootDir, ".gitignore"))
	if err == nil {
		lines = append(lines, strings.Split(string(data), "\n")...)
	}
	return gitignore.CompileIgnoreLines(lines...)
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// Accepts reports whether a path below the root takes part in the index.
func (c *Codebase) Accepts(path string) bool {
	if filepath.Ext(path) != ".java" {
		return false
	}
	rel, err := filepath.Rel(c.rootDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	if c.ignore != nil && c.ignore.MatchesPath(rel) {
		return false
	}
	for _, g := range c.exclude {
		if g.Match(rel) {
			return false
		}
	}
	if len(c.include) == 0 {
		return true
	}
	for _, g := range c.include {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// ScanAll parses every accepted .java file below the root on a bounded
// pool of goroutines and rebuilds the index once.
func (c *Codebase) ScanAll(ctx context.Context) error {
	var paths []string
	err := filepath.WalkDir(c.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warningf("walk %s: %v", path, err)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if path != c.rootDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if c.Accepts(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", c.rootDir, err)
	}

	parsed := c.parseAll(ctx, paths)
	if err := ctx.Err(); err != nil {
		return err
	}

	c.updates.Lock()
	defer c.updates.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range parsed {
		c.files[f.Path] = f
	}
	c.rebuildLocked()
	log.Infof("indexed %d files, %d types below %s", len(c.files), len(c.types), c.rootDir)
	return nil
}

func (c *Codebase) parseAll(ctx context.Context, paths []string) []*FileInfo {
	jobs := make(chan string)
	results := make([]*FileInfo, len(paths))
	index := make(map[string]int, len(paths))
	for i, p := range paths {
		index[p] = i
	}

	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				content, err := os.ReadFile(path)
				if err != nil {
					log.Warningf("read %s: %v", path, err)
					continue
				}
				results[index[path]] = parseFile(path, content)
			}
		}()
	}

	for _, p := range paths {
		select {
		case jobs <- p:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	out := results[:0]
	for _, f := range results {
		if f != nil {
			out = append(out, f)
		}
	}
	return out
}

func parseFile(path string, content []byte) *FileInfo {
	f := &FileInfo{Path: path, Content: content}
	tree, err := parser.Parse(content, parser.WithFile(path))
	if err != nil {
		log.Warningf("parse %s: %v", path, err)
		f.Unit = &java.SourceUnit{Path: path}
		return f
	}
	defer tree.Close()
	f.Errors = tree.Errors()
	for _, e := range f.Errors {
		log.Debugf("%s", e.Error())
	}
	f.Unit = java.UnitFromTree(tree)
	return f
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

func (c *Codebase) UpdateFile(path string, content []byte) error {
	f := parseFile(path, content)

	c.updates.Lock()
	defer c.updates.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = f
	c.rebuildLocked()
	return nil
}

func (c *Codebase) RemoveFile(path string) {
	c.updates.Lock()
	defer c.updates.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.files[path]; !ok {
		return
	}
	delete(c.files, path)
	c.rebuildLocked()
}

// View runs fn while no file change can be applied, so every read inside
// fn sees the same version of the index. fn must not update the Codebase.
func (c *Codebase) View(fn func() error) error {
	c.updates.RLock()
	defer c.updates.RUnlock()
	return fn()
}

func (c *Codebase) rebuildLocked() {
	c.cache.Purge()
	types := make(map[string]*java.TypeDecl)
	var all []*java.TypeDecl
	for _, path := range c.pathsLocked() {
		for _, t := range c.files[path].Unit.AllTypes() {
			if prev, dup := types[t.QualifiedName]; dup {
				log.Warningf("type %s declared in %s and %s", t.QualifiedName, prev.Unit().Path, path)
				continue
			}
			types[t.QualifiedName] = t
			all = append(all, t)
		}
	}
	c.types = types
	c.inner = java.BuildInnerTypeIndex(all)

	c.subtypes = make(map[string][]*java.TypeDecl)
	for _, t := range all {
		for _, ref := range t.Supertypes() {
			if super := c.supertypeLocked(t, ref); super != nil {
				c.subtypes[super.QualifiedName] = append(c.subtypes[super.QualifiedName], t)
			}
		}
	}
}

func (c *Codebase) pathsLocked() []string {
	paths := make([]string, 0, len(c.files))
	for p := range c.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns the indexed paths in lexical order.
func (c *Codebase) Files() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pathsLocked()
}

func (c *Codebase) AllTypes() []*java.TypeDecl {
	c.mu.RLock()
	defer c.mu.RUnlock()
	all := make([]*java.TypeDecl, 0, len(c.types))
	for _, t := range c.types {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].QualifiedName < all[j].QualifiedName })
	return all
}

func (c *Codebase) TypeByName(fqn string) (*java.TypeDecl, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.types[fqn]
	return t, ok
}

// UnitOf returns the source unit declaring the type.
func (c *Codebase) UnitOf(fqn string) (*java.SourceUnit, bool) {
	t, ok := c.TypeByName(fqn)
	if !ok {
		return nil, false
	}
	return t.Unit(), true
}

// Implementations returns every type that extends or implements fqn,
// directly or transitively, ordered by name.
func (c *Codebase) Implementations(fqn string) []*java.TypeDecl {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := map[string]bool{fqn: true}
	var out []*java.TypeDecl
	queue := []string{fqn}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, sub := range c.subtypes[name] {
			if seen[sub.QualifiedName] {
				continue
			}
			seen[sub.QualifiedName] = true
			out = append(out, sub)
			queue = append(queue, sub.QualifiedName)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QualifiedName < out[j].QualifiedName })
	return out
}

// HasPackage reports whether a type of the code base is declared in pkg.
func (c *Codebase) HasPackage(pkg string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.types {
		if t.Package == pkg {
			return true
		}
	}
	return false
}
