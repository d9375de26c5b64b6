package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// zoneinfoDirs are the usual locations of the host timezone registry.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
}

// platformIdentifiers enumerates the IANA identifiers known to the host
// by walking the zoneinfo directory and validating each candidate with
// time.LoadLocation. Returns nil when no registry is found; the catalog
// then consists of the curated entries only.
func platformIdentifiers() []string {
	for _, dir := range zoneinfoDirs {
		if idents := walkZoneinfo(dir); len(idents) > 0 {
			return idents
		}
	}
	return nil
}

func walkZoneinfo(root string) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	var idents []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		name, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		name = filepath.ToSlash(name)
		if skipZoneinfoEntry(name) {
			return nil
		}
		if _, err := time.LoadLocation(name); err == nil {
			idents = append(idents, name)
		}
		return nil
	})
	return idents
}

// skipZoneinfoEntry filters out the non-zone files that live alongside
// the TZif data (leap second tables, posix/right duplicates, etc.).
func skipZoneinfoEntry(name string) bool {
	switch {
	case strings.HasPrefix(name, "posix/"),
		strings.HasPrefix(name, "right/"),
		strings.HasPrefix(name, "posixrules"),
		strings.HasPrefix(name, "localtime"),
		strings.HasPrefix(name, "Factory"):
		return true
	}
	base := name[strings.LastIndex(name, "/")+1:]
	// Metadata files are lowercase or dotted; zone names start uppercase.
	if base == "" || base[0] < 'A' || base[0] > 'Z' {
		return true
	}
	return strings.Contains(base, ".")
}
