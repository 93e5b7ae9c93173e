package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

const (
	saltLen = 16
	keyLen  = 32

	// topes para digests leídos del storage; fuera de esto argon2 entra en pánico o no termina
	maxMemoryKiB = 4 * 1024 * 1024
	maxTime      = 64
)

var ErrMalformedDigest = errors.New("password: malformed digest")

// Params son los costos de argon2id. Los valores por defecto siguen la guía OWASP.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

func DefaultParams() Params {
	return Params{Time: 3, MemoryKiB: 64 * 1024, Threads: 2}
}

// Hasher genera y verifica digests en formato PHC:
// $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<hash>
type Hasher struct {
	params Params
}

func NewHasher(p Params) *Hasher {
	d := DefaultParams()
	if p.Time == 0 {
		p.Time = d.Time
	}
	if p.MemoryKiB == 0 {
		p.MemoryKiB = d.MemoryKiB
	}
	if p.Threads == 0 {
		p.Threads = d.Threads
	}
	return &Hasher{params: p}
}

// Hash usa un salt aleatorio nuevo en cada llamada.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "password: read salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify devuelve (false, nil) si el password no coincide y error solo si el digest
// no se puede interpretar.
func (h *Hasher) Verify(digest, password string) (bool, error) {
	p, salt, key, err := decode(digest)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decode(digest string) (Params, []byte, []byte, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Params{}, nil, nil, errors.Wrap(ErrMalformedDigest, err.Error())
	}
	if version != argon2.Version {
		return Params{}, nil, nil, errors.Wrapf(ErrMalformedDigest, "unsupported version %d", version)
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.MemoryKiB, &p.Time, &p.Threads); err != nil {
		return Params{}, nil, nil, errors.Wrap(ErrMalformedDigest, err.Error())
	}

	if p.Time < 1 || p.Time > maxTime || p.Threads < 1 ||
		p.MemoryKiB < 8*uint32(p.Threads) || p.MemoryKiB > maxMemoryKiB {
		return Params{}, nil, nil, errors.Wrapf(ErrMalformedDigest, "params out of range m=%d,t=%d,p=%d", p.MemoryKiB, p.Time, p.Threads)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, nil, errors.Wrap(ErrMalformedDigest, "salt")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Params{}, nil, nil, errors.Wrap(ErrMalformedDigest, "key")
	}

	return p, salt, key, nil
}
