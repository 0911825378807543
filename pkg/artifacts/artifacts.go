// Package artifacts reads truffle build artifacts and bundles their ABIs and
// deployed addresses for consumers that do not need bytecode.
package artifacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ErrUnknownContract = errors.New("unknown contract")

type NetworkEntry struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

// Artifact is the subset of a truffle build JSON file this tool uses
type Artifact struct {
	ContractName     string                  `json:"contractName"`
	ABI              json.RawMessage         `json:"abi"`
	Bytecode         string                  `json:"bytecode"`
	DeployedBytecode string                  `json:"deployedBytecode"`
	Networks         map[string]NetworkEntry `json:"networks"`
}

// ExportedContract is what ends up in a bundle: no bytecode
type ExportedContract struct {
	ContractName string                  `json:"contractName"`
	ABI          json.RawMessage         `json:"abi"`
	Networks     map[string]NetworkEntry `json:"networks"`
}

// Bundle maps contract names to their exported form
type Bundle map[string]ExportedContract

func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if a.ContractName == "" {
		a.ContractName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if a.Networks == nil {
		a.Networks = map[string]NetworkEntry{}
	}
	return &a, nil
}

// LoadDir loads every *.json artifact in dir keyed by contract name
func LoadDir(dir string) (map[string]*Artifact, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no artifacts found in %s", dir)
	}
	out := make(map[string]*Artifact, len(paths))
	for _, p := range paths {
		a, err := LoadArtifact(p)
		if err != nil {
			return nil, err
		}
		out[a.ContractName] = a
	}
	return out, nil
}

// ParsedABI validates and parses the artifact ABI
func (a *Artifact) ParsedABI() (abi.ABI, error) {
	if len(a.ABI) == 0 {
		return abi.ABI{}, fmt.Errorf("%s has no abi", a.ContractName)
	}
	parsed, err := abi.JSON(bytes.NewReader(a.ABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("invalid abi in %s: %w", a.ContractName, err)
	}
	return parsed, nil
}

// AddressOn returns the deployed address on a network id
func (a *Artifact) AddressOn(networkID string) (common.Address, bool) {
	entry, ok := a.Networks[networkID]
	if !ok || !common.IsHexAddress(entry.Address) {
		return common.Address{}, false
	}
	return common.HexToAddress(entry.Address), true
}

// Export bundles the named artifacts in dir (all of them when names is empty)
// and writes the bundle as JSON to outPath. Every ABI is validated first.
func Export(dir, outPath string, names []string) (Bundle, error) {
	all, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		for name := range all {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	bundle := make(Bundle, len(names))
	for _, name := range names {
		a, ok := all[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownContract, name)
		}
		if _, err := a.ParsedABI(); err != nil {
			return nil, err
		}
		bundle[name] = ExportedContract{
			ContractName: a.ContractName,
			ABI:          a.ABI,
			Networks:     a.Networks,
		}
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode bundle: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("failed to write bundle: %w", err)
	}
	return bundle, nil
}
