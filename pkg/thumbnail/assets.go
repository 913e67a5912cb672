// assets.go — Character and background art loading with an in-process
// decode cache. Assets are read from an fs.FS so tests can use fstest
// and deployments can point at a bundle directory.
package thumbnail

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// assetLoader decodes images from an fs.FS, caching decoded results.
// Decoded art never changes on disk during a process lifetime, so cache
// entries only expire to bound memory.
type assetLoader struct {
	fsys  fs.FS
	cache *gocache.Cache
}

func newAssetLoader(fsys fs.FS) *assetLoader {
	return &assetLoader{
		fsys:  fsys,
		cache: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// load reads and decodes the image at path.
func (l *assetLoader) load(path string) (image.Image, error) {
	if cached, ok := l.cache.Get(path); ok {
		return cached.(image.Image), nil
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open asset %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode asset %s: %w", path, err)
	}

	l.cache.SetDefault(path, img)
	return img, nil
}
