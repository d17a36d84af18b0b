package loader

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

var validate = validator.New()

// Manifest describes one library. Declaration references (extension member
// targets, interface and typedef type targets) are raw canonical-name paths
// below the root, segment by segment, so private buckets and the @typedefs
// bucket appear explicitly.
type Manifest struct {
	URI        string              `yaml:"uri" validate:"required"`
	Name       string              `yaml:"name"`
	Classes    []ClassManifest     `yaml:"classes" validate:"dive"`
	Extensions []ExtensionManifest `yaml:"extensions" validate:"dive"`
	Typedefs   []TypedefManifest   `yaml:"typedefs" validate:"dive"`
	Fields     []FieldManifest     `yaml:"fields" validate:"dive"`
	Procedures []ProcedureManifest `yaml:"procedures" validate:"dive"`
}

type ClassManifest struct {
	Name           string                `yaml:"name" validate:"required"`
	Abstract       bool                  `yaml:"abstract"`
	TypeParameters []TypeParamManifest   `yaml:"typeParameters" validate:"dive"`
	Supertype      *TypeManifest         `yaml:"supertype"`
	Interfaces     []TypeManifest        `yaml:"interfaces" validate:"dive"`
	Fields         []FieldManifest       `yaml:"fields" validate:"dive"`
	Constructors   []ConstructorManifest `yaml:"constructors" validate:"dive"`
	Procedures     []ProcedureManifest   `yaml:"procedures" validate:"dive"`
}

type ExtensionManifest struct {
	Name           string                    `yaml:"name" validate:"required"`
	TypeParameters []TypeParamManifest       `yaml:"typeParameters" validate:"dive"`
	On             TypeManifest              `yaml:"on"`
	Members        []ExtensionMemberManifest `yaml:"members" validate:"dive"`
}

type ExtensionMemberManifest struct {
	Name   string   `yaml:"name" validate:"required"`
	Kind   string   `yaml:"kind" validate:"required,oneof=method getter setter operator"`
	Target []string `yaml:"target" validate:"required,min=1"`
}

type TypedefManifest struct {
	Name           string              `yaml:"name" validate:"required"`
	TypeParameters []TypeParamManifest `yaml:"typeParameters" validate:"dive"`
	Type           TypeManifest        `yaml:"type"`
}

type TypeParamManifest struct {
	Name  string        `yaml:"name"`
	Bound *TypeManifest `yaml:"bound"`
}

type FieldManifest struct {
	Name   string       `yaml:"name" validate:"required"`
	Type   TypeManifest `yaml:"type"`
	Static bool         `yaml:"static"`
	Final  bool         `yaml:"final"`
	Const  bool         `yaml:"const"`
}

type ProcedureManifest struct {
	Name     string           `yaml:"name" validate:"required"`
	Kind     string           `yaml:"kind" validate:"omitempty,oneof=method getter setter operator factory"`
	Static   bool             `yaml:"static"`
	Abstract bool             `yaml:"abstract"`
	Function FunctionManifest `yaml:"function"`
}

type ConstructorManifest struct {
	// Name is empty for the unnamed constructor.
	Name     string           `yaml:"name"`
	Const    bool             `yaml:"const"`
	Function FunctionManifest `yaml:"function"`
}

type FunctionManifest struct {
	TypeParameters []TypeParamManifest `yaml:"typeParameters" validate:"dive"`
	Parameters     []ParameterManifest `yaml:"parameters" validate:"dive"`
	ReturnType     *TypeManifest       `yaml:"returnType"`
}

type ParameterManifest struct {
	Name  string       `yaml:"name"`
	Type  TypeManifest `yaml:"type"`
	Named bool         `yaml:"named"`
}

// TypeManifest is the tagged-map type encoding. Which fields apply depends
// on kind: interface and typedef use target plus typeArguments,
// typeParameter resolves name lexically, function uses parameters plus
// returnType. Omitted nullability means nonNullable.
type TypeManifest struct {
	Kind          string         `yaml:"kind" validate:"required,oneof=interface typedef typeParameter function dynamic void never"`
	Target        []string       `yaml:"target"`
	Name          string         `yaml:"name"`
	TypeArguments []TypeManifest `yaml:"typeArguments" validate:"dive"`
	Parameters    []TypeManifest `yaml:"parameters" validate:"dive"`
	ReturnType    *TypeManifest  `yaml:"returnType"`
	Nullability   string         `yaml:"nullability" validate:"omitempty,oneof=legacy nullable undetermined nonNullable"`
}

func parseManifest(name string, data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.UnmarshalWithOptions(data, &m, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("loader: parse %s: %w", name, err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("loader: validate %s: %w", name, err)
	}
	return &m, nil
}
