package main

import (
	"context"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/javaslice/java"
	"github.com/dhamidi/javaslice/java/codebase"
	"github.com/dhamidi/javaslice/project"
	"github.com/dhamidi/javaslice/slice"
)

const configFileName = project.FileName

var log = commonlog.GetLogger("javaslice.cmd")

func loadProject(opts *globalOptions) (*project.Project, error) {
	if opts.configFile != "" {
		return project.LoadFile(opts.configFile)
	}
	return project.LoadFrom(opts.dir)
}

// parseSeeds validates every seed before any file is read.
func parseSeeds(specs []string) ([]slice.Seed, error) {
	seeds := make([]slice.Seed, 0, len(specs))
	for _, spec := range specs {
		seed, err := slice.ParseSeed(spec)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

func openIndex(ctx context.Context, p *project.Project) (*codebase.Codebase, error) {
	cb, err := p.OpenCodebase()
	if err != nil {
		return nil, err
	}
	if err := cb.ScanAll(ctx); err != nil {
		return nil, err
	}
	return cb, nil
}

func closeOver(cb *codebase.Codebase, seeds []slice.Seed, opts []slice.Option) (*slice.Result, error) {
	var decls []java.Decl
	for _, seed := range seeds {
		found, err := slice.FindSeed(cb, seed)
		if err != nil {
			return nil, err
		}
		decls = append(decls, found...)
	}
	res, err := slice.NewContext(cb, opts...).CloseOver(decls)
	if err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}
	return res, nil
}

// sliceProject runs the whole pipeline for the given seed specs.
func sliceProject(ctx context.Context, opts *globalOptions, specs []string) (*project.Project, *slice.Result, error) {
	seeds, err := parseSeeds(specs)
	if err != nil {
		return nil, nil, err
	}
	p, err := loadProject(opts)
	if err != nil {
		return nil, nil, err
	}
	cb, err := openIndex(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	res, err := closeOver(cb, seeds, p.SliceOptions())
	if err != nil {
		return nil, nil, err
	}
	return p, res, nil
}
