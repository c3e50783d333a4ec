// Package legends archives and sorts the export files a legends-mode
// session leaves in the Dwarf Fortress folder. Exports from DF 0.40.09
// and later are zipped for Legends Viewer and filed away per region.
package legends

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

var log = logging.GetLogger("legends")

// exportGlob matches any file DF writes during a legends export, e.g.
// "region1-00250-01-01-legends.xml".
const exportGlob = "region*-*-??-??-*"

var (
	exportPrefixRe = regexp.MustCompile(`^(.*)-\d{5,}-\d\d-\d\d`)
	exportDateRe   = regexp.MustCompile(`\d+-\d\d-\d\d`)
)

// regionMapKinds are the map suffixes DF uses for whole-region exports.
// One file per kind is filed under region_maps.
var regionMapKinds = []string{
	"world_map", "bm", "detailed", "dip", "drn", "el", "elw",
	"evil", "hyd", "nob", "rain", "sal", "sav", "str", "tmp",
	"trd", "veg", "vol",
}

// Export identifies one set of legends export files by region and date.
type Export struct {
	Region string
	Date   string
}

// Prefix returns the filename prefix shared by the set, e.g.
// "region1-00250-01-01".
func (e Export) Prefix() string {
	return e.Region + "-" + e.Date
}

// Processor archives and sorts legends exports found in the Dwarf
// Fortress folder.
type Processor struct {
	fs  types.FS
	ctx settings.Context
}

// NewProcessor returns a processor over the given install.
func NewProcessor(fs types.FS, ctx settings.Context) *Processor {
	return &Processor{fs: fs, ctx: ctx}
}

// RegionInfo scans the Dwarf Fortress folder for legends export files
// and returns the region and date of the first set found.
func (p *Processor) RegionInfo() (Export, bool) {
	files, err := p.globDF(exportGlob)
	if err != nil {
		log.Debug().Err(err).Msg("Cannot scan for legends exports")
		return Export{}, false
	}
	for _, f := range files {
		name := filepath.Base(f)
		m := exportPrefixRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		return Export{Region: m[1], Date: exportDateRe.FindString(name)}, true
	}
	return Export{}, false
}

// CreateArchive zips the export set into a Legends Viewer archive named
// <region>-<date>-legends_archive.zip, removing the archived originals.
// When parts of the set are missing it falls back to zipping just the
// legends xml, and when even that is absent it does nothing.
func (p *Processor) CreateArchive(exp Export) error {
	dir := p.ctx.Paths.DFDir()
	prefix := filepath.Join(dir, exp.Prefix()+"-")
	members := []string{
		prefix + "legends.xml",
		prefix + "world_history.txt",
		filepath.Join(dir, exp.Region+"-world_gen_param.txt"),
		p.chooseRegionMap(exp),
		prefix + "world_sites_and_pops.txt",
	}
	if p.isFile(prefix + "legends_plus.xml") {
		members = append(members, prefix+"legends_plus.xml")
	}

	complete := true
	for _, member := range members {
		if !p.isFile(member) {
			complete = false
			break
		}
	}
	switch {
	case complete:
		return p.zipInto(prefix+"legends_archive.zip", members)
	case p.isFile(prefix + "legends.xml"):
		return p.zipInto(prefix+"legends_xml.zip", []string{prefix + "legends.xml"})
	}
	return nil
}

// chooseRegionMap returns the most preferred region map of the set. The
// fallback name is returned even when no map exists, so the caller's
// completeness check fails on it.
func (p *Processor) chooseRegionMap(exp Export) string {
	dir := p.ctx.Paths.DFDir()
	for _, name := range []string{"detailed", "world_map"} {
		for _, ext := range []string{".png", ".bmp"} {
			candidate := filepath.Join(dir, exp.Prefix()+"-"+name+ext)
			if p.isFile(candidate) {
				return candidate
			}
		}
	}
	return filepath.Join(dir, exp.Prefix()+"-world_map.bmp")
}

// MoveFiles sorts the remaining export files into
// <region>_legends_exports, with site maps and region maps in their own
// subfolders, and deletes the color key files. The exports folder lives
// under "User Generated Content/Legends" when the workshop has that
// folder, otherwise next to the exports themselves.
func (p *Processor) MoveFiles(exp Export) error {
	dir := p.exportsDir(exp)

	siteMaps, err := p.globDF(exp.Prefix() + "-site_map-*")
	if err != nil {
		return err
	}
	for _, f := range siteMaps {
		if err := p.moveInto(f, filepath.Join(dir, "site_maps")); err != nil {
			return err
		}
	}

	for _, kind := range regionMapKinds {
		matches, err := p.globDF(exp.Prefix() + "-" + kind + ".???")
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			continue
		}
		log.Debug().Str("map", filepath.Base(matches[0])).Msg("Filing region map")
		if err := p.moveInto(matches[0], filepath.Join(dir, "region_maps")); err != nil {
			return err
		}
	}

	misc, err := p.globDF(exp.Region + "-*")
	if err != nil {
		return err
	}
	for _, f := range misc {
		if err := p.moveInto(f, dir); err != nil {
			return err
		}
	}

	keys, err := p.globDF("*_color_key.txt")
	if err != nil {
		return err
	}
	for _, f := range keys {
		if err := p.fs.Remove(f); err != nil {
			log.Warn().Err(err).Str("file", f).Msg("Cannot remove color key")
		}
	}
	return nil
}

// ProcessAll archives and sorts every export set in the Dwarf Fortress
// folder and returns how many sets were processed. Versions without
// legends export support are a no-op.
func (p *Processor) ProcessAll() (int, error) {
	if !dfversion.AtLeast(p.ctx.Version, dfversion.LegendsSupport) {
		log.Debug().Str("version", p.ctx.Version).
			Msg("Dwarf Fortress too old for legends exports")
		return 0, nil
	}
	processed := 0
	for {
		exp, ok := p.RegionInfo()
		if !ok {
			break
		}
		log.Info().Str("region", exp.Region).Str("date", exp.Date).
			Msg("Processing legends export")
		if err := p.CreateArchive(exp); err != nil {
			return processed, err
		}
		if err := p.MoveFiles(exp); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

// exportsDir picks the folder the sorted exports end up in.
func (p *Processor) exportsDir(exp Export) string {
	name := exp.Region + "_legends_exports"
	ugc := filepath.Join(p.ctx.Paths.Root(), "User Generated Content")
	if info, err := p.fs.Stat(ugc); err == nil && info.IsDir() {
		return filepath.Join(ugc, "Legends", name)
	}
	return filepath.Join(p.ctx.Paths.DFDir(), name)
}

// globDF returns the files directly under the Dwarf Fortress folder
// whose names match pattern, sorted by name.
func (p *Processor) globDF(pattern string) ([]string, error) {
	dir := p.ctx.Paths.DFDir()
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "reading %s", dir)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := doublestar.Match(pattern, entry.Name()); !ok {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func (p *Processor) isFile(path string) bool {
	info, err := p.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// moveInto renames source into targetDir, creating the folder as
// needed. A source whose target already exists is dropped instead.
func (p *Processor) moveInto(source, targetDir string) error {
	target := filepath.Join(targetDir, filepath.Base(source))
	if p.isFile(target) {
		return p.fs.Remove(source)
	}
	if err := p.fs.MkdirAll(targetDir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating %s", targetDir)
	}
	if err := p.fs.Rename(source, target); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"moving %s", filepath.Base(source))
	}
	return nil
}

// zipInto writes members into a deflate zip at target, arcnames being
// the base names, then removes the originals.
func (p *Processor) zipInto(target string, members []string) error {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, member := range members {
		data, err := p.fs.ReadFile(member)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess,
				"reading %s for archive", filepath.Base(member))
		}
		w, err := zw.Create(filepath.Base(member))
		if err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "creating archive entry")
		}
		if _, err := w.Write(data); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite,
				"archiving %s", filepath.Base(member))
		}
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "closing archive")
	}
	if err := p.fs.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"writing %s", filepath.Base(target))
	}
	for _, member := range members {
		if err := p.fs.Remove(member); err != nil {
			log.Warn().Err(err).Str("file", member).
				Msg("Cannot remove archived export file")
		}
	}
	log.Info().Str("archive", filepath.Base(target)).
		Int("files", len(members)).Msg("Created legends archive")
	return nil
}
