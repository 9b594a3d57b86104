// Package verifier implements the proof-verification collaborators of the
// proving engine: Merkle inclusion proofs against declared header roots, and
// zero-knowledge proofs against a declared block hash.
package verifier

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/pkg/errors"

	"github.com/tessera-network/go-tessera/logger"
)

// Verifier validates Merkle inclusion proofs and zero-knowledge proofs.
// Zero-knowledge verification is dispatched through a verifying-key registry
// keyed by the per-slot verifier id.
type Verifier struct {
	mu  sync.RWMutex
	vks map[string]groth16.VerifyingKey

	logger.Instance
}

// New creates an empty verifier.
func New() *Verifier {
	return &Verifier{
		vks:      make(map[string]groth16.VerifyingKey),
		Instance: logger.New("verifier"),
	}
}

// RegisterVerifyingKey registers the verifying key under the verifier id.
func (v *Verifier) RegisterVerifyingKey(id string, vk groth16.VerifyingKey) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.vks[id] = vk
}

// verifyingKey returns the registered key of the verifier id.
func (v *Verifier) verifyingKey(id string) (groth16.VerifyingKey, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	vk, ok := v.vks[id]
	return vk, ok
}

// LoadVerifyingKeys registers every "<verifier id>.vk" file found in dir.
func (v *Verifier) LoadVerifyingKeys(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.vk"))
	if err != nil {
		return err
	}
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		vk := groth16.NewVerifyingKey(ecc.BN254)
		_, err = vk.ReadFrom(f)
		f.Close()
		if err != nil {
			return errors.Wrapf(err, "failed to read verifying key %s", file)
		}
		id := strings.TrimSuffix(filepath.Base(file), ".vk")
		v.RegisterVerifyingKey(id, vk)
		v.Log.Info("Registered verifying key", "verifier", id)
	}
	return nil
}
