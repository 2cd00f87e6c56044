package config

import (
	"go.trai.ch/liner/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// File represents the structure of the liner.yaml configuration file.
// Toggles are pointers so that absent keys default to enabled.
type File struct {
	SelfUpdate   *bool                    `yaml:"self_update"`
	UpdateOthers *bool                    `yaml:"update_others"`
	Packages     map[string]PackageEntry `yaml:"packages"`
}

// PackageEntry is a package declaration: either a bare version intent string
// or a detailed mapping carrying installer options.
type PackageEntry struct {
	Version           domain.VersionIntent `yaml:"version"`
	Features          []string             `yaml:"features"`
	AllFeatures       bool                 `yaml:"all_features"`
	NoDefaultFeatures bool                 `yaml:"no_default_features"`
}

// detailedEntry has the same fields as PackageEntry without its custom unmarshaler.
type detailedEntry PackageEntry

// UnmarshalYAML accepts both the string and the mapping form.
func (e *PackageEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		intent, err := domain.ParseVersionIntent(raw)
		if err != nil {
			return zerr.With(err, "line", node.Line)
		}
		*e = PackageEntry{Version: intent}
		return nil
	case yaml.MappingNode:
		var raw detailedEntry
		if err := node.Decode(&raw); err != nil {
			return err
		}
		if !raw.Version.Kind.Valid() {
			err := zerr.With(zerr.Wrap(domain.ErrInvalidPackageEntry, "missing version"), "line", node.Line)
			return err
		}
		*e = PackageEntry(raw)
		return nil
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidPackageEntry, "expected a version string or a mapping"), "line", node.Line)
	}
}

// toDomain converts the decoded file into a desired configuration.
func (f *File) toDomain() *domain.DesiredConfig {
	cfg := domain.NewDesiredConfig()
	if f.SelfUpdate != nil {
		cfg.SelfUpdate = *f.SelfUpdate
	}
	if f.UpdateOthers != nil {
		cfg.UpdateOthers = *f.UpdateOthers
	}
	for name, entry := range f.Packages {
		cfg.Packages[name] = domain.Package{
			Intent: entry.Version,
			Options: domain.InstallOptions{
				Features:          entry.Features,
				AllFeatures:       entry.AllFeatures,
				NoDefaultFeatures: entry.NoDefaultFeatures,
			},
		}
	}
	return cfg
}

// encodeNode builds the YAML document for cfg with packages in lexicographic order.
func encodeNode(cfg *domain.DesiredConfig) (*yaml.Node, error) {
	packages := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range cfg.Names() {
		value, err := packageNode(cfg.Packages[name])
		if err != nil {
			return nil, zerr.With(err, "package", name)
		}
		packages.Content = append(packages.Content, stringNode(name), value)
	}
	if len(packages.Content) == 0 {
		packages.Style = yaml.FlowStyle
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		stringNode("self_update"), boolNode(cfg.SelfUpdate),
		stringNode("update_others"), boolNode(cfg.UpdateOthers),
		stringNode("packages"), packages,
	)
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}, nil
}

func packageNode(pkg domain.Package) (*yaml.Node, error) {
	text, err := pkg.Intent.MarshalText()
	if err != nil {
		return nil, err
	}
	if pkg.Options.IsZero() {
		return stringNode(string(text)), nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content, stringNode("version"), stringNode(string(text)))
	if len(pkg.Options.Features) > 0 {
		features := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, f := range pkg.Options.Features {
			features.Content = append(features.Content, stringNode(f))
		}
		node.Content = append(node.Content, stringNode("features"), features)
	}
	if pkg.Options.AllFeatures {
		node.Content = append(node.Content, stringNode("all_features"), boolNode(true))
	}
	if pkg.Options.NoDefaultFeatures {
		node.Content = append(node.Content, stringNode("no_default_features"), boolNode(true))
	}
	return node, nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func boolNode(value bool) *yaml.Node {
	v := "false"
	if value {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}
