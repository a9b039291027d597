package key

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/BurntSushi/toml"

	"github.com/drand/sike/log"
)

// Store abstracts the loading and saving of keypair material. For the
// moment, only a file based store is implemented.
type Store interface {
	SaveKeyPair(p *Pair) error
	LoadKeyPair() (*Pair, error)
}

// ErrAbsent is returned when the store can't find the requested object.
var ErrAbsent = errors.New("key: store can't find requested object")

const keyFileName = "sike_id"
const privateExtension = ".private"
const publicExtension = ".public"

// FileStore saves keypairs as TOML files under a folder, the private part
// with 0600 permissions, the public part world-readable next to it.
type FileStore struct {
	PrivateFile string
	PublicFile  string
	log         log.Logger
}

// NewFileStore creates the file store rooted at the given folder.
func NewFileStore(folder string, l log.Logger) *FileStore {
	if l == nil {
		l = log.DefaultLogger()
	}
	private := path.Join(folder, keyFileName+privateExtension)
	return &FileStore{
		PrivateFile: private,
		PublicFile:  path.Join(folder, keyFileName+publicExtension),
		log:         l.Named("store"),
	}
}

// SaveKeyPair writes the private then the public file.
func (f *FileStore) SaveKeyPair(p *Pair) error {
	if err := save(f.PrivateFile, p, true); err != nil {
		return err
	}
	f.log.Infow("saved keypair", "private", f.PrivateFile, "public", f.PublicFile)
	pub := &Public{Scheme: p.Scheme, Key: p.Pub}
	return save(f.PublicFile, pub, false)
}

// LoadKeyPair reads the keypair back from the private file.
func (f *FileStore) LoadKeyPair() (*Pair, error) {
	p := new(Pair)
	if err := load(f.PrivateFile, p); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadPublic reads only the shareable part from the public file.
func (f *FileStore) LoadPublic() (*Public, error) {
	p := new(Public)
	if err := load(f.PublicFile, p); err != nil {
		return nil, err
	}
	return p, nil
}

func save(filePath string, t Tomler, secure bool) error {
	perm := os.FileMode(0644)
	if secure {
		perm = 0600
	}
	fd, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("key: opening %s: %w", filePath, err)
	}
	defer fd.Close()
	return toml.NewEncoder(fd).Encode(t.TOML())
}

func load(filePath string, t Tomler) error {
	tomlValue := t.TOMLValue()
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return ErrAbsent
	}
	if _, err := toml.DecodeFile(filePath, tomlValue); err != nil {
		return fmt.Errorf("key: decoding %s: %w", filePath, err)
	}
	return t.FromTOML(tomlValue)
}
