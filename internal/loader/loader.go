package loader

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/reeflective/argon/internal/errors"
	"github.com/reeflective/argon/internal/grammar"
	"github.com/reeflective/argon/internal/scheme"
	"github.com/reeflective/argon/internal/values"
)

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New()
})

// Load reads and checks the grammar file at path.
func Load(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err, "open grammar: %v", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads and checks a grammar document. Unknown fields are refused.
func Decode(r io.Reader) (*Document, error) {
	doc := new(Document)

	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(doc); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err, "decode grammar: %s", yaml.FormatError(err, false, true))
	}

	if err := validate().Struct(doc); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, err, "invalid grammar: %s", validationMessage(err))
	}

	return doc, nil
}

// Encode writes the document as YAML.
func Encode(w io.Writer, doc *Document) error {
	return yaml.NewEncoder(w, yaml.Indent(2)).Encode(doc)
}

// Compile declares the document nodes and compiles them.
func (d *Document) Compile() (*scheme.Scheme, error) {
	nodes := make([]*grammar.Node, 0, len(d.Nodes))

	for _, doc := range d.Nodes {
		node, err := doc.Declare()
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
	}

	return scheme.Compile(nodes, d.options()...)
}

func (d *Document) options() []scheme.OptFunc {
	var opts []scheme.OptFunc

	if d.Groupable != nil {
		opts = append(opts, scheme.Groupable(*d.Groupable))
	}

	if d.Immediate != nil {
		opts = append(opts, scheme.Immediate(*d.Immediate))
	}

	if d.Delimiter != nil {
		opts = append(opts, scheme.Delimiter(*d.Delimiter))
	}

	return opts
}

// Declare returns the node declared by the document, and its inline members.
func (n *NodeDoc) Declare() (*grammar.Node, error) {
	opts, err := n.options()
	if err != nil {
		return nil, err
	}

	if n.Program {
		return grammar.NewProgram(n.Name, opts...)
	}

	return grammar.New(n.Name, opts...)
}

func (n *NodeDoc) options() ([]grammar.OptFunc, error) {
	opts := []grammar.OptFunc{
		grammar.Short(n.Short...),
		grammar.Delimiter(n.Delimiter),
		grammar.Immediate(n.Immediate),
		grammar.Groupable(n.Groupable),
		grammar.DoubleDash(n.DoubleDash),
		grammar.Description(n.Description),
	}

	if n.LongPrefix != nil {
		opts = append(opts, grammar.LongPrefix(*n.LongPrefix))
	}

	if n.ShortPrefix != nil {
		opts = append(opts, grammar.ShortPrefix(*n.ShortPrefix))
	}

	if n.AnyName {
		opts = append(opts, grammar.Validator(grammar.AcceptAny))
	}

	if n.Cardinality != "" {
		card, err := grammar.ParseFlagCardinality(n.Cardinality)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidConfig, err, "%q: %v", n.Name, err)
		}

		opts = append(opts, grammar.WithFlagCardinality(card))
	}

	if n.Value != "" {
		shape, err := values.ParseShape(n.Value)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidConfig, err, "%q: %v", n.Name, err)
		}

		opts = append(opts, grammar.WithValueShape(shape))
	}

	if n.ValueRequired != nil {
		opts = append(opts, grammar.WithValueNecessity(necessity(*n.ValueRequired)))
	}

	if n.MemberCardinality != "" {
		card, err := grammar.ParseMemberCardinality(n.MemberCardinality)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidConfig, err, "%q: %v", n.Name, err)
		}

		opts = append(opts, grammar.WithMemberCardinality(card))
	}

	if n.MemberRequired != nil {
		opts = append(opts, grammar.WithMemberNecessity(necessity(*n.MemberRequired)))
	}

	members := make([]any, 0, len(n.Members))

	for _, member := range n.Members {
		if member.Node == nil {
			members = append(members, member.Ref)

			continue
		}

		node, err := member.Node.Declare()
		if err != nil {
			return nil, err
		}

		members = append(members, node)
	}

	if len(members) > 0 {
		opts = append(opts, grammar.Members(members...))
	}

	return opts, nil
}

func necessity(required bool) grammar.Necessity {
	if required {
		return grammar.Required
	}

	return grammar.Optional
}

// validationMessage rewrites validator errors with the YAML field paths.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))

	for _, verr := range verrs {
		field := strings.TrimPrefix(verr.Namespace(), "Document.")

		switch verr.Tag() {
		case "required", "min":
			msgs = append(msgs, field+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: `%v` is not one of %s", field, verr.Value(), verr.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: `%v` is not a valid %s", field, verr.Value(), verr.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}
