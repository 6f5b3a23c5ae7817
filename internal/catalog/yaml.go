package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog layout.
type File struct {
	Curves    map[string][]int  `yaml:"curves"`
	Skills    map[string]string `yaml:"skills"` // skill name -> curve name
	Items     []FileItem        `yaml:"items"`
	Resources []FileResource    `yaml:"resources"`
}

// FileItem is an item declaration.
type FileItem struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Asset string `yaml:"asset"`
}

// FileResource is a resource declaration. Skill defaults to mining.
type FileResource struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Asset string     `yaml:"asset"`
	Skill string     `yaml:"skill"`
	Drops []FileDrop `yaml:"drops"`
}

// FileDrop is a drop entry declaration.
type FileDrop struct {
	Item  string `yaml:"item"`
	Level int    `yaml:"level"`
	Exp   int    `yaml:"exp"`
	Rate  int    `yaml:"rate"`
}

// Parse decodes YAML catalog data and builds it.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: cannot parse yaml: %w", err)
	}
	return f.Build()
}

// Build converts the file layout into a validated catalog. A file without
// curves gets the default curve.
func (f File) Build() (*Catalog, error) {
	b := NewBuilder()

	if len(f.Curves) == 0 {
		b.AddCurve(DefaultCurve, DefaultThresholds...)
	}
	for name, th := range f.Curves {
		b.AddCurve(name, th...)
	}
	for skillName, curve := range f.Skills {
		s, ok := ParseSkill(skillName)
		if !ok {
			b.fail("unknown skill %q", skillName)
			continue
		}
		b.UseCurve(s, curve)
	}
	for _, it := range f.Items {
		b.AddItem(ItemID(it.ID), it.Name, it.Asset)
	}
	for _, r := range f.Resources {
		skill := SkillMining
		if r.Skill != "" {
			s, ok := ParseSkill(r.Skill)
			if !ok {
				b.fail("resource %q: unknown skill %q", r.ID, r.Skill)
				continue
			}
			skill = s
		}
		drops := make([]DropSpec, len(r.Drops))
		for i, d := range r.Drops {
			drops[i] = DropSpec{Item: ItemID(d.Item), Level: d.Level, Exp: d.Exp, Rate: d.Rate}
		}
		b.AddResource(ResourceID(r.ID), r.Name, r.Asset, skill, drops...)
	}

	return b.Build()
}
