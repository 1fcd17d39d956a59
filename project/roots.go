package project

import (
	"os"
	"path/filepath"
	"sort"
)

// detectRoots finds the source directories of a tree. It recognises
// module layouts (src/<project>/<module>/module-info.java), Maven and
// Gradle layouts (src/main/java, src/test/java) and falls back to the
// whole tree.
func detectRoots(rootDir string) []string {
	if roots := moduleRoots(rootDir); len(roots) > 0 {
		return roots
	}
	var roots []string
	for _, dir := range []string{"src/main/java", "src/test/java"} {
		if isDir(filepath.Join(rootDir, filepath.FromSlash(dir))) {
			roots = append(roots, dir)
		}
	}
	if len(roots) > 0 {
		return roots
	}
	return []string{"."}
}

func moduleRoots(rootDir string) []string {
	srcDir := filepath.Join(rootDir, "src")
	projects, err := os.ReadDir(srcDir)
	if err != nil {
		return nil
	}
	var roots []string
	for _, proj := range projects {
		if !proj.IsDir() {
			continue
		}
		modules, err := os.ReadDir(filepath.Join(srcDir, proj.Name()))
		if err != nil {
			continue
		}
		for _, mod := range modules {
			if !mod.IsDir() {
				continue
			}
			info := filepath.Join(srcDir, proj.Name(), mod.Name(), "module-info.java")
			if _, err := os.Stat(info); err != nil {
				continue
			}
			roots = append(roots, "src/"+proj.Name()+"/"+mod.Name())
		}
	}
	sort.Strings(roots)
	return roots
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
