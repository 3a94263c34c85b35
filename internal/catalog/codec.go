package catalog

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"metromap/internal/network"
	"metromap/internal/schematic"
)

// Decode parses one YAML city file. Schematic paths that fail to parse are
// skipped with a warning; the stations still load. base is the directory the
// file came from, used for schematicFile and local backgroundImage paths; an
// empty base leaves them untouched.
func Decode(data []byte, base string) (*network.CityMap, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, eris.Wrap(err, "catalog: parse yaml")
	}
	if len(root.Content) == 0 {
		return nil, eris.New("catalog: empty city file")
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, eris.Errorf("catalog: city file at line %d is not a mapping", doc.Line)
	}

	// decode paths one at a time so a bad one can be dropped
	var paths *yaml.Node
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == "schematic" {
			paths = doc.Content[i+1]
			doc.Content = append(doc.Content[:i:i], doc.Content[i+2:]...)
			break
		}
	}

	var c network.CityMap
	if err := doc.Decode(&c); err != nil {
		return nil, eris.Wrap(err, "catalog: decode city")
	}
	if strings.TrimSpace(c.Code) == "" {
		return nil, eris.New("catalog: city has no code")
	}

	if paths != nil {
		for _, n := range paths.Content {
			var p schematic.Path
			if err := n.Decode(&p); err != nil {
				zap.L().Warn("skipping schematic path",
					zap.String("city", c.Code), zap.Int("line", n.Line), zap.Error(err))
				continue
			}
			c.Schematic = append(c.Schematic, p)
		}
	}

	if c.SchematicFile != "" && base != "" {
		more, err := schematic.LoadGeoJSON(resolve(base, c.SchematicFile))
		if err != nil {
			zap.L().Warn("skipping schematic file",
				zap.String("city", c.Code), zap.String("file", c.SchematicFile), zap.Error(err))
		} else {
			c.Schematic = append(c.Schematic, more...)
		}
	}
	if c.BackgroundImage != "" && base != "" && !isURL(c.BackgroundImage) {
		c.BackgroundImage = resolve(base, c.BackgroundImage)
	}
	return &c, nil
}

// Encode renders a city as YAML with the schematic inlined as WKT, so the
// output needs no companion files.
func Encode(c *network.CityMap) ([]byte, error) {
	out := *c
	out.SchematicFile = ""
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return nil, eris.Wrapf(err, "catalog: encode %s", c.Code)
	}
	if err := enc.Close(); err != nil {
		return nil, eris.Wrapf(err, "catalog: encode %s", c.Code)
	}
	return buf.Bytes(), nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
