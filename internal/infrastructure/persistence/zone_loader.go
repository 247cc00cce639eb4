package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lite-lake/dnsops/internal/domain"
	"github.com/lite-lake/dnsops/internal/domain/entity"
)

type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// zoneFile is the declarative document schema:
//
//	zone: example.com
//	records:
//	  - name: www
//	    type: A
//	    ttl: 300
//	    content: ["192.0.2.10"]
type zoneFile struct {
	Zone    string          `yaml:"zone" json:"zone"`
	Records []entity.Record `yaml:"records" json:"records"`
}

// ZoneLoader turns a desired-state document into a validated Zone. The load
// is all-or-nothing: one bad record fails the whole document so the differ
// never runs against partial intent.
type ZoneLoader struct{}

func NewZoneLoader() *ZoneLoader {
	return &ZoneLoader{}
}

func (l *ZoneLoader) LoadFile(path string) (*entity.Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.WrapOp("read zone file", err)
	}
	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	zone, err := l.Load(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return zone, nil
}

func (l *ZoneLoader) Load(data []byte, format Format) (*entity.Zone, error) {
	switch format {
	case FormatJSON:
		return l.loadJSON(data)
	default:
		return l.loadYAML(data)
	}
}

func (l *ZoneLoader) loadYAML(data []byte) (*entity.Zone, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// yaml.v3 reports line numbers in its own message.
		return nil, fmt.Errorf("%w: %v", domain.ErrZoneParseFailed, err)
	}

	var zf zoneFile
	if err := doc.Decode(&zf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrZoneParseFailed, err)
	}

	return l.build(&zf, recordLines(&doc))
}

func (l *ZoneLoader) loadJSON(data []byte) (*entity.Zone, error) {
	var zf zoneFile
	if err := json.Unmarshal(data, &zf); err != nil {
		var syn *json.SyntaxError
		var typ *json.UnmarshalTypeError
		switch {
		case errors.As(err, &syn):
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrZoneParseFailed, lineAtOffset(data, syn.Offset), err)
		case errors.As(err, &typ):
			return nil, fmt.Errorf("%w: line %d: field %s: %v", domain.ErrZoneParseFailed, lineAtOffset(data, typ.Offset), typ.Field, err)
		default:
			return nil, fmt.Errorf("%w: %v", domain.ErrZoneParseFailed, err)
		}
	}
	return l.build(&zf, nil)
}

func (l *ZoneLoader) build(zf *zoneFile, lines []int) (*entity.Zone, error) {
	if zf.Zone == "" {
		return nil, fmt.Errorf("%w: zone", domain.ErrRequired)
	}

	zone, err := entity.NewZone(zf.Zone)
	if err != nil {
		return nil, err
	}

	for i := range zf.Records {
		record := zf.Records[i]
		record.Name = entity.QualifyName(record.Name, zone.Name)
		if err := zone.AddRecord(&record); err != nil {
			return nil, fmt.Errorf("records[%d]%s: %w", i, lineSuffix(lines, i), err)
		}
	}
	return zone, nil
}

// recordLines extracts the source line of every entry in the records
// sequence so validation errors can point at the offending item.
func recordLines(doc *yaml.Node) []int {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "records" {
			continue
		}
		seq := root.Content[i+1]
		if seq.Kind != yaml.SequenceNode {
			return nil
		}
		lines := make([]int, len(seq.Content))
		for j, item := range seq.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}

func lineSuffix(lines []int, i int) string {
	if i < len(lines) {
		return fmt.Sprintf(" (line %d)", lines[i])
	}
	return ""
}

func lineAtOffset(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte{'\n'}) + 1
}
