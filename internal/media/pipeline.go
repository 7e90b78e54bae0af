// Package media stages local uploads into durable storage and reclaims
// local disk space once no pending post references a file.
package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Stager uploads a staged local file to durable remote storage.
type Stager interface {
	Upload(ctx context.Context, localPath string) (string, error)
}

// ReferenceCounter reports how many non-terminal posts still reference a
// staged media path.
type ReferenceCounter interface {
	CountActiveMediaRefs(ctx context.Context, localPath string) (int64, error)
}

// Pipeline coordinates staging and reclaim. A per-path lock closes the
// race between the reclaim check and a concurrent cycle staging the same
// file for another platform.
type Pipeline struct {
	stager Stager
	refs   ReferenceCounter
	root   string
	log    zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPipeline(stager Stager, refs ReferenceCounter, localRoot string, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		stager: stager,
		refs:   refs,
		root:   localRoot,
		log:    log,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Resolve maps a media path as stored on a post document onto the local
// filesystem. Posts store either absolute paths or paths carrying the
// staging root prefix.
func (p *Pipeline) Resolve(mediaPath string) string {
	if filepath.IsAbs(mediaPath) {
		return filepath.Clean(mediaPath)
	}
	rootBase := filepath.Base(p.root)
	clean := strings.TrimPrefix(filepath.ToSlash(mediaPath), rootBase+"/")
	return filepath.Join(p.root, filepath.FromSlash(clean))
}

// ReadFile loads a staged file for platform-native ingestion.
func (p *Pipeline) ReadFile(mediaPath string) ([]byte, error) {
	return os.ReadFile(p.Resolve(mediaPath))
}

// Exists reports whether the staged file is still on disk.
func (p *Pipeline) Exists(mediaPath string) bool {
	_, err := os.Stat(p.Resolve(mediaPath))
	return err == nil
}

// Stage uploads a staged file to durable storage, holding the path lock
// so a concurrent reclaim cannot delete it mid-upload.
func (p *Pipeline) Stage(ctx context.Context, mediaPath string) (string, error) {
	local := p.Resolve(mediaPath)

	lock := p.pathLock(local)
	lock.Lock()
	defer lock.Unlock()

	return p.stager.Upload(ctx, local)
}

// Reclaim deletes the local file if and only if zero non-terminal posts
// still reference the path. Called after a platform publish has fully
// persisted; one staged file may back multiple pending posts, so this is
// reference counting, not delete-after-use.
func (p *Pipeline) Reclaim(ctx context.Context, mediaPath string) error {
	local := p.Resolve(mediaPath)

	lock := p.pathLock(local)
	lock.Lock()
	defer lock.Unlock()

	count, err := p.refs.CountActiveMediaRefs(ctx, mediaPath)
	if err != nil {
		return err
	}
	if count > 0 {
		p.log.Debug().Str("path", mediaPath).Int64("refs", count).Msg("media still referenced, keeping file")
		return nil
	}

	if err := os.Remove(local); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	p.log.Info().Str("path", mediaPath).Msg("staged media reclaimed")
	return nil
}

func (p *Pipeline) pathLock(local string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	l, ok := p.locks[local]
	if !ok {
		l = &sync.Mutex{}
		p.locks[local] = l
	}
	return l
}
