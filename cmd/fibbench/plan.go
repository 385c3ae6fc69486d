package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var errBadPlan = errors.New("fibbench: invalid plan")

// Plan describes one benchmark session. It can be loaded from YAML:
//
//	sizes: [10000, 100000]
//	decrease: true
//	verify: true
//	seed: 7
type Plan struct {
	Sizes    []int `yaml:"sizes"`
	Decrease bool  `yaml:"decrease"`
	Verify   bool  `yaml:"verify"`
	Seed     int64 `yaml:"seed"`
}

func loadPlan(path string) (Plan, error) {
	var p Plan
	bz, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("error reading plan file: %w", err)
	}
	if err = yaml.Unmarshal(bz, &p); err != nil {
		return p, fmt.Errorf("error unmarshaling plan file: %w", err)
	}

	return p, p.check()
}

func (p Plan) check() error {
	for _, n := range p.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: size %d must be positive", errBadPlan, n)
		}
	}

	return nil
}

// mergePlan fills every setting not set explicitly on the command line from
// the plan file; explicit flags win.
func mergePlan(fs *pflag.FlagSet, flags, file Plan) Plan {
	out := flags
	if !fs.Changed("sizes") && len(file.Sizes) > 0 {
		out.Sizes = file.Sizes
	}
	if !fs.Changed("decrease") && file.Decrease {
		out.Decrease = true
	}
	if !fs.Changed("verify") && file.Verify {
		out.Verify = true
	}
	if !fs.Changed("seed") && file.Seed != 0 {
		out.Seed = file.Seed
	}

	return out
}
