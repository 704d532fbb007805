package shop

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store owns the shop's files on disk and the diagnostic logger. It is
// passed explicitly to every operation that reads or writes state; there
// is no hidden package-level catalog.
//
// The files are plain CSV so they stay editable and auditable by hand.
// Only one process is expected to use them at a time: a concurrent writer
// would be silently overwritten by the next full snapshot rewrite.
type Store struct {
	CatalogFile string
	SalesFile   string
	ReceiptsDir string
	Currency    string

	log *zap.SugaredLogger
}

// NewStore creates a store for the given file locations. A nil logger is
// replaced with a no-op one.
func NewStore(catalogFile, salesFile, receiptsDir, currency string, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{
		CatalogFile: catalogFile,
		SalesFile:   salesFile,
		ReceiptsDir: receiptsDir,
		Currency:    currency,
		log:         log,
	}
}

// Load reads the catalog snapshot. It never fails: a missing file means a
// first run and yields an empty catalog, and an unreadable or malformed
// snapshot degrades to an empty catalog with a logged diagnostic.
func (s *Store) Load() *Catalog {
	f, err := os.Open(s.CatalogFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Infow("no catalog snapshot yet, starting fresh", "file", s.CatalogFile)
		} else {
			s.log.Errorw("could not open catalog snapshot, starting empty", "file", s.CatalogFile, "error", err)
		}
		return NewCatalog()
	}
	defer f.Close()

	c, err := DecodeCatalog(f, s.Currency)
	if err != nil {
		s.log.Errorw("could not decode catalog snapshot, starting empty", "file", s.CatalogFile, "error", err)
		return NewCatalog()
	}
	s.log.Debugw("catalog loaded", "file", s.CatalogFile, "products", c.Len())
	return c
}

// Save rewrites the full catalog snapshot. The write is a plain overwrite:
// there is no partial update of the snapshot file.
func (s *Store) Save(c *Catalog) error {
	if dir := filepath.Dir(s.CatalogFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for catalog %q: %w", s.CatalogFile, err)
		}
	}
	f, err := os.Create(s.CatalogFile)
	if err != nil {
		return fmt.Errorf("could not open catalog snapshot %q for writing: %w", s.CatalogFile, err)
	}
	defer f.Close()

	if err := EncodeCatalog(f, c); err != nil {
		return fmt.Errorf("could not write catalog snapshot %q: %w", s.CatalogFile, err)
	}
	return nil
}

// persist saves the catalog after a mutating operation. A failure is
// logged and swallowed: the in-memory catalog stays authoritative for the
// rest of the run, possibly unsynced to disk. Accepted risk for a
// single-user tool.
func (s *Store) persist(c *Catalog) {
	if err := s.Save(c); err != nil {
		s.log.Errorw("could not persist catalog, in-memory state is ahead of disk", "error", err)
	}
}
