package crack

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// The offset search is capped per sample so that a wide modulus over narrow
// samples cannot blow up the nested k1/k2/k3 enumeration.
const defaultMaxOffset = 500

const ErrorModulusTooLarge = "modulus candidates above 2^32 are not supported"

// Profile bounds the LCG search: which moduli to try, in order, and how
// many truncation offsets to enumerate per sample. Earlier moduli are
// preferred when several fit.
type Profile struct {
	Moduli    []uint64 `yaml:"moduli"`
	MaxOffset uint64   `yaml:"max_offset"`
}

// DefaultProfile tries the standard 31- and 32-bit LCG families, smaller
// modulus first.
func DefaultProfile() Profile {
	return Profile{
		Moduli:    []uint64{1 << 31, 1 << 32},
		MaxOffset: defaultMaxOffset,
	}
}

// LoadProfile reads a yaml search profile. Fields left out of the file fall
// back to the defaults. Moduli above 2^32 are rejected: the search relies on
// the product of two residues fitting in a uint64.
func LoadProfile(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %v", err)
	}
	def := DefaultProfile()
	if len(p.Moduli) == 0 {
		p.Moduli = def.Moduli
	}
	if p.MaxOffset == 0 {
		p.MaxOffset = def.MaxOffset
	}
	for _, m := range p.Moduli {
		if m > 1<<32 {
			return Profile{}, errors.New(ErrorModulusTooLarge)
		}
	}
	return p, nil
}
