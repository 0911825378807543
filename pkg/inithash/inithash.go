// Package inithash checks and rewrites the pair init-code hash that an AMM
// library hard codes against the hash of the compiled pair bytecode.
package inithash

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solo-margin/solo-tools/pkg/artifacts"
	"github.com/solo-margin/solo-tools/pkg/codec"
)

var (
	ErrHashMismatch = errors.New("init code hash mismatch")
	ErrNoBytecode   = errors.New("artifact has no creation bytecode")
	ErrHashLiteral  = errors.New("expected exactly one hex'...' init code hash literal")
)

var hashLiteral = regexp.MustCompile(`hex'([0-9a-fA-F]{64})'`)

type Result struct {
	Expected common.Hash
	Actual   common.Hash
	Patched  bool
}

func (r Result) Matches() bool {
	return r.Expected == r.Actual
}

// ComputeInitCodeHash hashes the creation bytecode of an artifact
func ComputeInitCodeHash(a *artifacts.Artifact) (common.Hash, error) {
	if codec.StripHexPrefix(a.Bytecode) == "" {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrNoBytecode, a.ContractName)
	}
	if strings.Contains(a.Bytecode, "__") {
		return common.Hash{}, fmt.Errorf("%s bytecode has unlinked library placeholders", a.ContractName)
	}
	h, err := codec.HashBytes(a.Bytecode)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash %s bytecode: %w", a.ContractName, err)
	}
	return common.HexToHash(h), nil
}

// FindExpectedHash returns the single init code hash literal in a Solidity source
func FindExpectedHash(source []byte) (common.Hash, error) {
	matches := hashLiteral.FindAllSubmatch(source, -1)
	if len(matches) != 1 {
		return common.Hash{}, fmt.Errorf("%w, found %d", ErrHashLiteral, len(matches))
	}
	return common.HexToHash(string(matches[0][1])), nil
}

func load(artifactPath, solidityPath string) (Result, []byte, error) {
	a, err := artifacts.LoadArtifact(artifactPath)
	if err != nil {
		return Result{}, nil, err
	}
	actual, err := ComputeInitCodeHash(a)
	if err != nil {
		return Result{}, nil, err
	}
	source, err := os.ReadFile(solidityPath)
	if err != nil {
		return Result{}, nil, fmt.Errorf("failed to read library source: %w", err)
	}
	expected, err := FindExpectedHash(source)
	if err != nil {
		return Result{}, nil, fmt.Errorf("%s: %w", solidityPath, err)
	}
	return Result{Expected: expected, Actual: actual}, source, nil
}

// Verify fails with ErrHashMismatch when the library literal differs from the bytecode hash
func Verify(artifactPath, solidityPath string) (Result, error) {
	res, _, err := load(artifactPath, solidityPath)
	if err != nil {
		return Result{}, err
	}
	if !res.Matches() {
		return res, fmt.Errorf("%w: %s has %s, bytecode hashes to %s", ErrHashMismatch, solidityPath, res.Expected.Hex(), res.Actual.Hex())
	}
	return res, nil
}

// Patch rewrites the library literal to the bytecode hash. The file is left
// untouched when it already matches.
func Patch(artifactPath, solidityPath string) (Result, error) {
	res, source, err := load(artifactPath, solidityPath)
	if err != nil {
		return Result{}, err
	}
	if res.Matches() {
		return res, nil
	}

	info, err := os.Stat(solidityPath)
	if err != nil {
		return Result{}, err
	}
	replacement := []byte("hex'" + codec.StripHexPrefix(res.Actual.Hex()) + "'")
	patched := hashLiteral.ReplaceAllLiteral(source, replacement)
	if bytes.Equal(patched, source) {
		return Result{}, fmt.Errorf("failed to patch %s", solidityPath)
	}
	if err := os.WriteFile(solidityPath, patched, info.Mode().Perm()); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", solidityPath, err)
	}
	res.Patched = true
	return res, nil
}
