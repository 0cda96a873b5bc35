package driver

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/diag"
	"ember/internal/source"
)

// Bump when the CachedTokenization layout changes; stale entries are then
// treated as misses.
const diskCacheSchemaVersion uint16 = 1

// Digest keys the cache by file content hash.
type Digest = [32]byte

// DiskCache persists tokenization artifacts keyed by content digest, so
// repeated runs over unchanged files can skip lexing. Safe for concurrent
// use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiagnostic is the serialized form of one diagnostic. Spans collapse
// to byte offsets; FileIDs are not stable across runs.
type CachedDiagnostic struct {
	Code      uint16
	Severity  uint8
	Message   string
	StartByte uint32
	EndByte   uint32
}

// CachedTokenization stores the reusable outcome of lexing one file.
type CachedTokenization struct {
	Schema      uint16
	Path        string
	TokenCount  int
	HasErrors   bool
	Diagnostics []CachedDiagnostic
	Dump        []byte // the aligned token dump, ready to print
}

// OpenDiskCache initializes a disk cache under the standard user cache
// location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a disk cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "tok", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a payload, atomically replacing any previous
// entry for the key.
func (c *DiskCache) Put(key Digest, payload *CachedTokenization) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload for the key. A missing entry or schema mismatch is a
// miss, not an error.
func (c *DiskCache) Get(key Digest, out *CachedTokenization) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll wipes the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// CacheTokenization converts a per-file result into its cache payload.
func CacheTokenization(res *TokenizeResult, dump []byte) *CachedTokenization {
	payload := &CachedTokenization{
		Schema:     diskCacheSchemaVersion,
		Path:       res.File.Path,
		TokenCount: res.Buffer.NumTokens(),
		HasErrors:  res.Buffer.HasErrors(),
		Dump:       dump,
	}
	for _, d := range res.Bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiagnostic{
			Code:      uint16(d.Code),
			Severity:  uint8(d.Severity),
			Message:   d.Message,
			StartByte: d.Primary.Start,
			EndByte:   d.Primary.End,
		})
	}
	return payload
}

// TokenizeWithCache consults the cache before lexing. On a hit the returned
// result has a restored Bag but no Buffer, and the payload carries the dump
// to print. On a miss the file is lexed, stored, and returned live with a
// nil payload. A nil cache degrades to plain Tokenize.
func TokenizeWithCache(path string, cache *DiskCache, maxDiagnostics int) (*TokenizeResult, *CachedTokenization, error) {
	if cache == nil {
		res, err := Tokenize(path, maxDiagnostics)
		return res, nil, err
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	file := fs.Get(fileID)

	var payload CachedTokenization
	if hit, err := cache.Get(file.Hash, &payload); err == nil && hit {
		return &TokenizeResult{
			FileSet: fs,
			File:    file,
			Bag:     RestoreDiagnostics(&payload, fileID, maxDiagnostics),
		}, &payload, nil
	}

	res := tokenizeFile(fs, fileID, maxDiagnostics)
	var dump bytes.Buffer
	res.Buffer.Print(&dump)
	if err := cache.Put(file.Hash, CacheTokenization(res, dump.Bytes())); err != nil {
		return res, nil, err
	}
	return res, nil, nil
}

// RestoreDiagnostics rebuilds a Bag from a cached payload, attributing all
// spans to the given file.
func RestoreDiagnostics(payload *CachedTokenization, fileID source.FileID, maxDiagnostics int) *diag.Bag {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	for _, d := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary: source.Span{
				File:  fileID,
				Start: d.StartByte,
				End:   d.EndByte,
			},
		})
	}
	return bag
}
