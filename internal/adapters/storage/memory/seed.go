package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"people-directory/internal/domain/people"
)

// seedFile es el formato TOML: una tabla [[people]] por persona.
type seedFile struct {
	People []people.Person `toml:"people"`
}

// LoadSeed carga personas desde .json o .toml. El JSON puede ser un array
// o un objeto id -> persona; si la persona no trae id se usa la key.
func (r *PeopleRepo) LoadSeed(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "read seed file %s", path)
	}

	var list []people.Person
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var f seedFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return 0, errors.Wrapf(err, "parse toml seed %s", path)
		}
		list = f.People
	case ".json":
		list, err = decodeJSONSeed(data)
		if err != nil {
			return 0, errors.Wrapf(err, "parse json seed %s", path)
		}
	default:
		return 0, errors.Errorf("unsupported seed file extension %q", filepath.Ext(path))
	}

	for _, p := range list {
		if strings.TrimSpace(p.ID) == "" {
			return 0, errors.Errorf("seed %s: person %q has no id", path, p.FirstName)
		}
		if _, err := r.AddPerson(ctx, p); err != nil {
			return 0, errors.Wrapf(err, "seed %s: person %s", path, p.ID)
		}
	}

	return len(list), nil
}

func decodeJSONSeed(data []byte) ([]people.Person, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []people.Person
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var byID map[string]people.Person
	if err := json.Unmarshal(trimmed, &byID); err != nil {
		return nil, err
	}
	list := make([]people.Person, 0, len(byID))
	for id, p := range byID {
		if p.ID == "" {
			p.ID = id
		}
		list = append(list, p)
	}
	return list, nil
}
