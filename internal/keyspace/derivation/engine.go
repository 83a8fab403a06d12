package derivation

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
	"go.uber.org/zap"
)

const (
	seedLength     = 64
	checksumLength = 4
	ethAddressLen  = 20
)

var errInvalidScalar = errors.New("scalar outside keyspace")

// Engine derives addresses for every registry entry. It is safe for
// concurrent use.
type Engine struct {
	registry Registry
	params   *chaincfg.Params
	logger   *zap.Logger
}

// NewEngine validates the registry and builds an Engine.
func NewEngine(registry Registry, logger *zap.Logger) (*Engine, error) {
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("validate registry: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		registry: registry,
		params:   &chaincfg.MainNetParams,
		logger:   logger,
	}, nil
}

// Derive returns the addresses of index in registry order. A scalar outside
// the keyspace yields an empty list; a failing entry is logged and skipped.
func (e *Engine) Derive(index *big.Int) []model.CryptoAddress {
	if !model.ValidScalar(index) {
		return []model.CryptoAddress{}
	}

	keys := newKeyMaterial(index, e.params)
	out := make([]model.CryptoAddress, 0, e.registry.Size())
	for _, tc := range e.registry {
		for _, vc := range tc.Variants {
			address, err := e.deriveEntry(keys, tc, vc)
			if err != nil {
				e.logger.Warn("derive address failed",
					zap.String("token", string(tc.Token)),
					zap.String("variant", string(vc.Name)),
					zap.String("hex", keys.hex),
					zap.Error(err),
				)
				continue
			}
			out = append(out, model.NewCryptoAddress(tc.Token, vc.Name, address))
		}
	}
	return out
}

// DeriveHex parses a hex key and derives its addresses.
func (e *Engine) DeriveHex(hexKey string) ([]model.CryptoAddress, error) {
	index, err := model.ParseHex(hexKey)
	if err != nil {
		return nil, err
	}
	return e.Derive(index), nil
}

func (e *Engine) deriveEntry(keys *keyMaterial, tc TokenConfig, vc VariantConfig) (address string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("derivation panic: %v", r)
		}
	}()

	switch v := vc.Variant.(type) {
	case UncompressedVariant:
		return keys.uncompressedP2PKH(tc.Version)
	case BipVariant:
		if v.Coin == Ethereum {
			return keys.ethereumAddress()
		}
		return keys.bipAddress(v.Standard, tc.Version)
	default:
		return "", fmt.Errorf("unknown variant %T", vc.Variant)
	}
}

// keyMaterial caches per-scalar intermediate keys so that tokens sharing a
// derivation path pay for it once.
type keyMaterial struct {
	scalar *big.Int
	hex    string
	params *chaincfg.Params

	priv      *btcec.PrivateKey
	master    *hdkeychain.ExtendedKey
	masterErr error
	children  map[Standard][]byte
}

func newKeyMaterial(scalar *big.Int, params *chaincfg.Params) *keyMaterial {
	return &keyMaterial{
		scalar:   scalar,
		hex:      model.FormatHex(scalar),
		params:   params,
		children: make(map[Standard][]byte, 4),
	}
}

func (k *keyMaterial) privateKey() (*btcec.PrivateKey, error) {
	if k.priv != nil {
		return k.priv, nil
	}
	if !model.ValidScalar(k.scalar) {
		return nil, errInvalidScalar
	}
	var raw [32]byte
	k.scalar.FillBytes(raw[:])
	k.priv, _ = btcec.PrivKeyFromBytes(raw[:])
	return k.priv, nil
}

// uncompressedPubKey returns 04 || X || Y.
func (k *keyMaterial) uncompressedPubKey() ([]byte, error) {
	priv, err := k.privateKey()
	if err != nil {
		return nil, err
	}
	return priv.PubKey().SerializeUncompressed(), nil
}

func (k *keyMaterial) uncompressedP2PKH(version []byte) (string, error) {
	pub, err := k.uncompressedPubKey()
	if err != nil {
		return "", err
	}
	return base58Check(version, btcutil.Hash160(pub)), nil
}

func (k *keyMaterial) ethereumAddress() (string, error) {
	pub, err := k.uncompressedPubKey()
	if err != nil {
		return "", err
	}
	digest := crypto.Keccak256(pub[1:])
	return "0x" + hex.EncodeToString(digest[len(digest)-ethAddressLen:]), nil
}

func (k *keyMaterial) bipAddress(standard Standard, version []byte) (string, error) {
	hash, err := k.childHash(standard)
	if err != nil {
		return "", err
	}
	return base58Check(version, hash), nil
}

// childHash walks <standard>'/0'/0'/0/0 from the master key derived from
// the 64-byte big-endian seed of the scalar and returns the Hash160 of the
// compressed child public key.
func (k *keyMaterial) childHash(standard Standard) ([]byte, error) {
	if hash, ok := k.children[standard]; ok {
		return hash, nil
	}
	path, err := standardPath(standard)
	if err != nil {
		return nil, err
	}
	key, err := k.masterKey()
	if err != nil {
		return nil, err
	}
	for _, step := range path {
		if key, err = key.Derive(step); err != nil {
			return nil, fmt.Errorf("derive child %d: %w", step, err)
		}
	}
	pub, err := key.ECPubKey()
	if err != nil {
		return nil, fmt.Errorf("child public key: %w", err)
	}
	hash := btcutil.Hash160(pub.SerializeCompressed())
	k.children[standard] = hash
	return hash, nil
}

func (k *keyMaterial) masterKey() (*hdkeychain.ExtendedKey, error) {
	if k.master != nil || k.masterErr != nil {
		return k.master, k.masterErr
	}
	seed := make([]byte, seedLength)
	k.scalar.FillBytes(seed)
	k.master, k.masterErr = hdkeychain.NewMaster(seed, k.params)
	if k.masterErr != nil {
		k.masterErr = fmt.Errorf("master key: %w", k.masterErr)
	}
	return k.master, k.masterErr
}

func standardPath(standard Standard) ([]uint32, error) {
	if !standard.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedStandard, standard)
	}
	h := uint32(hdkeychain.HardenedKeyStart)
	return []uint32{h + uint32(standard), h, h, 0, 0}, nil
}

// base58Check encodes version || payload || checksum where the checksum is
// the first four bytes of SHA256(SHA256(version || payload)).
func base58Check(version, payload []byte) string {
	versioned := make([]byte, 0, len(version)+len(payload)+checksumLength)
	versioned = append(versioned, version...)
	versioned = append(versioned, payload...)
	checksum := chainhash.DoubleHashB(versioned)[:checksumLength]
	return base58.Encode(append(versioned, checksum...))
}
