// Package assets stores display assets on flash using LittleFS.
//
// It keeps framebuffer snapshots, such as splash screens, and packed bitmap
// fonts. Writes are atomic: data goes to a temporary file which is then renamed
// over the old one, so a power loss never leaves a half-written asset.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/flavioheleno/ssd1306"
	"github.com/flavioheleno/ssd1306/font"
	"tinygo.org/x/tinyfs"
	"tinygo.org/x/tinyfs/littlefs"
)

const (
	assetDir   = "/assets"
	tempSuffix = ".tmp"
)

var (
	ErrNotFound    = errors.New("assets: not found")
	ErrInvalidName = errors.New("assets: invalid name")
	ErrFrameSize   = errors.New("assets: frame size does not match display")
)

// Store is a LittleFS filesystem holding assets.
type Store struct {
	fs      *littlefs.LFS
	dev     tinyfs.BlockDevice
	mounted bool
}

// Open mounts the filesystem on dev. If format is true and mount fails, the
// device is formatted first.
//
// Temporary files left by interrupted writes are removed.
func Open(dev tinyfs.BlockDevice, format bool) (*Store, error) {
	lfs := littlefs.New(dev)
	lfs.Configure(&littlefs.Config{
		CacheSize:     512,
		LookaheadSize: 128,
	})

	if err := lfs.Mount(); err != nil {
		if !format {
			return nil, fmt.Errorf("assets: mount: %w", err)
		}
		if err := lfs.Format(); err != nil {
			return nil, fmt.Errorf("assets: format: %w", err)
		}
		if err := lfs.Mount(); err != nil {
			return nil, fmt.Errorf("assets: mount: %w", err)
		}
	}

	s := &Store{fs: lfs, dev: dev, mounted: true}
	if err := s.fs.Mkdir(assetDir, 0755); err != nil && !isExist(err) {
		s.Close()
		return nil, fmt.Errorf("assets: mkdir: %w", err)
	}
	s.cleanup()
	return s, nil
}

// Close unmounts the filesystem.
func (s *Store) Close() error {
	if !s.mounted {
		return nil
	}
	s.mounted = false
	return s.fs.Unmount()
}

// cleanup removes temporary files left over from interrupted writes.
func (s *Store) cleanup() {
	entries, err := s.readDir()
	if err != nil {
		return
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), tempSuffix) {
			s.fs.Remove(path.Join(assetDir, e.Name()))
		}
	}
}

func (s *Store) readDir() ([]os.FileInfo, error) {
	f, err := s.fs.Open(assetDir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if !f.IsDir() {
		return nil, errors.New("assets: not a directory")
	}
	return f.Readdir(-1)
}

// isExist checks if an error is "already exists". LittleFS errors don't
// always match os.IsExist.
func isExist(err error) bool {
	return os.IsExist(err) || strings.Contains(err.Error(), "already exists")
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || strings.Contains(err.Error(), "No directory entry")
}

func assetPath(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\x00") || strings.HasSuffix(name, tempSuffix) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return path.Join(assetDir, name), nil
}

// Put stores data under name, replacing any previous asset.
func (s *Store) Put(name string, data []byte) error {
	p, err := assetPath(name)
	if err != nil {
		return err
	}
	tmp := p + tempSuffix

	// Remove temp file if it exists (from interrupted previous write)
	s.fs.Remove(tmp)

	f, err := s.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return fmt.Errorf("assets: create %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		s.fs.Remove(tmp)
		return fmt.Errorf("assets: write %s: %w", name, err)
	}
	if syncer, ok := f.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			f.Close()
			s.fs.Remove(tmp)
			return fmt.Errorf("assets: sync %s: %w", name, err)
		}
	}
	if err := f.Close(); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("assets: close %s: %w", name, err)
	}

	// LittleFS rename doesn't replace
	s.fs.Remove(p)
	if err := s.fs.Rename(tmp, p); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("assets: rename %s: %w", name, err)
	}
	return nil
}

// Get returns the asset stored under name.
func (s *Store) Get(name string) ([]byte, error) {
	p, err := assetPath(name)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(p)
	if err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	defer f.Close()

	var out bytes.Buffer
	buf := make([]byte, 256)
	for {
		n, err := f.Read(buf)
		out.Write(buf[:n])
		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("assets: read %s: %w", name, err)
		}
	}
	return out.Bytes(), nil
}

// Delete removes the asset stored under name.
func (s *Store) Delete(name string) error {
	p, err := assetPath(name)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil {
		if isNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	return nil
}

// List returns the names of the stored assets.
func (s *Store) List() ([]string, error) {
	entries, err := s.readDir()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), tempSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// SaveFrame stores the framebuffer of d. The frame is prefixed with the
// display width and height so that it can only be loaded on the same geometry.
func (s *Store) SaveFrame(name string, d *ssd1306.Dev) error {
	b := d.Bounds()
	data := make([]byte, 0, 2+len(d.Buffer()))
	data = append(data, byte(b.Dx()), byte(b.Dy()))
	data = append(data, d.Buffer()...)
	return s.Put(name, data)
}

// LoadFrame replaces the framebuffer of d with a frame stored by SaveFrame.
// The display is not flushed.
func (s *Store) LoadFrame(name string, d *ssd1306.Dev) error {
	data, err := s.Get(name)
	if err != nil {
		return err
	}
	b := d.Bounds()
	if len(data) != 2+len(d.Buffer()) || int(data[0]) != b.Dx() || int(data[1]) != b.Dy() {
		return fmt.Errorf("%w: %s", ErrFrameSize, name)
	}
	copy(d.Buffer(), data[2:])
	return nil
}

// LoadFont decodes a packed font asset, see font.ReadPacked.
func (s *Store) LoadFont(name string, w, h int, first byte, count int) (*font.Table, error) {
	data, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	t, err := font.ReadPacked(bytes.NewReader(data), w, h, first, count)
	if err != nil {
		return nil, fmt.Errorf("assets: font %s: %w", name, err)
	}
	return t, nil
}

// Size returns the capacity of the underlying block device in bytes.
func (s *Store) Size() int64 {
	return s.dev.Size()
}
