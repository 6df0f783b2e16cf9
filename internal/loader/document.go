// Package loader reads grammars declared in YAML files.
//
// A grammar file holds the scheme settings and a list of nodes:
//
//	delimiter: "="
//	nodes:
//	  - name: pmt
//	    program: true
//	    members: [set]
//	  - name: set
//	    long-prefix: ""
//	    cardinality: unique
//	    members:
//	      - name: target
//	        short: [t]
//
// Members are node names, or nodes declared inline.
package loader

// Document is a grammar file.
type Document struct {
	// Scheme overrides, applied to all nodes when set.
	Groupable *bool   `yaml:"groupable,omitempty"`
	Immediate *bool   `yaml:"immediate,omitempty"`
	Delimiter *string `yaml:"delimiter,omitempty"`

	Nodes []*NodeDoc `yaml:"nodes" validate:"required,min=1,dive,required"`
}

// NodeDoc declares a single node. Fields left empty take the
// defaults of the node declaration options.
type NodeDoc struct {
	Name    string `yaml:"name"    validate:"required"`
	Program bool   `yaml:"program,omitempty"`

	Short       []string `yaml:"short,omitempty"        validate:"dive,required"`
	LongPrefix  *string  `yaml:"long-prefix,omitempty"`
	ShortPrefix *string  `yaml:"short-prefix,omitempty"`

	Cardinality   string `yaml:"cardinality,omitempty"    validate:"omitempty,oneof=common primal unique"`
	Value         string `yaml:"value,omitempty"          validate:"omitempty,oneof=switch single common-array unique-array named-values"`
	ValueRequired *bool  `yaml:"value-required,omitempty"`

	Members           []MemberDoc `yaml:"members,omitempty"            validate:"dive"`
	MemberCardinality string      `yaml:"member-cardinality,omitempty" validate:"omitempty,oneof=one any"`
	MemberRequired    *bool       `yaml:"member-required,omitempty"`

	Delimiter  string `yaml:"delimiter,omitempty"`
	Immediate  bool   `yaml:"immediate,omitempty"`
	Groupable  bool   `yaml:"groupable,omitempty"`
	DoubleDash string `yaml:"double-dash,omitempty"`

	// AnyName skips flag name validation.
	AnyName bool `yaml:"any-name,omitempty"`

	Description string `yaml:"description,omitempty"`
}

// MemberDoc is either the name of a node or an inline node.
type MemberDoc struct {
	Ref  string
	Node *NodeDoc
}

// UnmarshalYAML accepts a scalar name or a node mapping.
func (m *MemberDoc) UnmarshalYAML(unmarshal func(any) error) error {
	var ref string
	if err := unmarshal(&ref); err == nil {
		m.Ref = ref

		return nil
	}

	node := new(NodeDoc)
	if err := unmarshal(node); err != nil {
		return err
	}

	m.Node = node

	return nil
}

// MarshalYAML writes references as scalars.
func (m MemberDoc) MarshalYAML() (any, error) {
	if m.Node != nil {
		return m.Node, nil
	}

	return m.Ref, nil
}
