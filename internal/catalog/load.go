package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed vendors.yaml
var builtinYAML []byte

//go:embed schema.cue
var schemaCUE string

// catalogFile is the on-disk shape of a catalog document.
type catalogFile struct {
	Vendors []Vendor `yaml:"vendors"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog Catalog
)

// Default returns the built-in catalog embedded in the binary.
// Panics if the embedded data fails to parse - that is a build defect,
// not a runtime condition.
func Default() Catalog {
	defaultOnce.Do(func() {
		vendors, err := parse(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded vendor catalog is invalid: %v", err))
		}
		defaultCatalog = New(vendors)
	})
	return defaultCatalog
}

// LoadFile reads a vendor catalog from a YAML file. The document is
// validated against the catalog schema before a catalog is returned.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	vendors, err := parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return New(vendors), nil
}

// parse unmarshals a catalog document and validates it against the CUE
// schema. Validation runs on the decoded values, so YAML and any future
// input format share one schema.
func parse(data []byte) ([]Vendor, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	// The schema requires eventTypes to be a list; a vendor entry that
	// omits it decodes to nil, which would encode as null.
	for i := range doc.Vendors {
		if doc.Vendors[i].EventTypes == nil {
			doc.Vendors[i].EventTypes = []string{}
		}
	}

	if err := validate(doc); err != nil {
		return nil, err
	}
	return doc.Vendors, nil
}

func validate(doc catalogFile) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	value := ctx.Encode(map[string]any{"vendors": doc.Vendors})
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}
	return nil
}
