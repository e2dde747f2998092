package dataset

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type file struct {
	Records []Record `toml:"record"`
}

// LoadFile reads a dataset from a TOML file holding [[record]] tables.
func LoadFile(path string) (Dataset, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("unable to decode dataset file %s: %w", path, err)
	}
	if len(f.Records) == 0 {
		return nil, fmt.Errorf("dataset file %s has no records", path)
	}
	return Dataset(f.Records), nil
}
