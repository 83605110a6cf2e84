package memory

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/catalog/pkg/types"
)

// LoadSeedFile reads a replacement seed dataset. The format follows the
// file extension: .json holds an array of products, .jsonl one product per
// line, .yaml/.yml a YAML sequence. The result is suitable for WithSeed.
func LoadSeedFile(path string) ([]types.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed %s: %w", path, err)
	}

	var products []types.Product
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &products)
	case ".jsonl":
		products, err = decodeJSONL(data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &products)
	default:
		return nil, fmt.Errorf("seed %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding seed %s: %w", path, err)
	}
	return products, nil
}

// decodeJSONL decodes one product per non-empty line. Unlike a data log, a
// seed is rejected on the first malformed line.
func decodeJSONL(data []byte) ([]types.Product, error) {
	var products []types.Product
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var p types.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		products = append(products, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
