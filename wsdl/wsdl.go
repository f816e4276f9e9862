// Package wsdl extracts a typed model of a web service description from its
// XML serialization: the data types, abstract messages and operations a
// client needs to construct and interpret calls against a SOAP-style
// service.
//
// The package does not invoke services, does not resolve bindings or
// transport endpoints, and does not validate documents against the WSDL/XSD
// grammar beyond locating the fields the model requires. Namespace prefixes
// are deliberately collapsed to local names.
package wsdl

import (
	"encoding/json"
	"strconv"
)

// Definitions is the model extracted from one WSDL document. It is built
// atomically by a single extraction pass and never mutated afterwards, so a
// value can be shared freely between goroutines.
type Definitions struct {
	// Name is the service element's name attribute.
	Name            string                `json:"name"`
	TargetNamespace string                `json:"target_namespace"`
	Types           map[string]Type       `json:"types"`
	Messages        map[string]*Message   `json:"messages"`
	Operations      map[string]*Operation `json:"operations"`
}

// Type is either a SimpleType or a *ComplexType.
type Type interface {
	// TypeName returns the type's local name.
	TypeName() string
}

// SimpleKind identifies one of the primitive XSD types the extractor
// recognizes. KindComplex marks a reference to another complex type by
// local name instead.
type SimpleKind string

const (
	KindBoolean  SimpleKind = "boolean"
	KindString   SimpleKind = "string"
	KindInt      SimpleKind = "int"
	KindFloat    SimpleKind = "float"
	KindDateTime SimpleKind = "dateTime"
	KindComplex  SimpleKind = "complex"
)

// SimpleType is a field's resolved type: a recognized primitive, or a
// reference to a complex type whose local name is carried in Ref.
type SimpleType struct {
	Kind SimpleKind `json:"kind"`
	Ref  string     `json:"ref,omitempty"`
}

// TypeName implements Type.
func (t SimpleType) TypeName() string {
	if t.Kind == KindComplex {
		return t.Ref
	}
	return string(t.Kind)
}

// simpleTypeOf maps a local type name to its SimpleType. The five
// recognized primitive names match case-sensitively; every other name is a
// complex type reference.
func simpleTypeOf(local string) SimpleType {
	switch local {
	case "boolean":
		return SimpleType{Kind: KindBoolean}
	case "string":
		return SimpleType{Kind: KindString}
	case "int":
		return SimpleType{Kind: KindInt}
	case "float":
		return SimpleType{Kind: KindFloat}
	case "dateTime":
		return SimpleType{Kind: KindDateTime}
	default:
		return SimpleType{Kind: KindComplex, Ref: local}
	}
}

// ComplexType is a named field table. Field names are unique within the
// type.
type ComplexType struct {
	Name   string           `json:"name"`
	Fields map[string]Field `json:"fields"`
}

// TypeName implements Type.
func (t *ComplexType) TypeName() string { return t.Name }

// Field is one named member of a complex type.
type Field struct {
	Attr TypeAttribute `json:"attr"`
	Type SimpleType    `json:"type"`
}

// Occurrence is one occurrence bound: the literal "unbounded" or a
// non-negative count.
type Occurrence struct {
	Unbounded bool
	Count     uint32
}

func (o Occurrence) String() string {
	if o.Unbounded {
		return "unbounded"
	}
	return strconv.FormatUint(uint64(o.Count), 10)
}

// MarshalJSON encodes the bound the way it is written in schema documents:
// the string "unbounded" or a number.
func (o Occurrence) MarshalJSON() ([]byte, error) {
	if o.Unbounded {
		return json.Marshal("unbounded")
	}
	return json.Marshal(o.Count)
}

// TypeAttribute carries a field's cardinality and nullability. The single
// valued bound pairs are normalized away: (minOccurs=0, maxOccurs=1)
// collapses to Nillable=true and (1,1) to Nillable=false, both with the
// bounds cleared, so only genuine repetition keeps explicit bounds.
type TypeAttribute struct {
	Nillable  bool        `json:"nillable"`
	MinOccurs *Occurrence `json:"min_occurs,omitempty"`
	MaxOccurs *Occurrence `json:"max_occurs,omitempty"`
}

// Message is a named abstract message and its recorded part. The grammar
// allows several parts per message; only the first is kept.
type Message struct {
	PartName    string `json:"part_name"`
	PartElement string `json:"part_element"`
}

// Operation is one port type operation. Input and Output hold message local
// names and are empty when the operation does not declare them. Faults is
// nil until the first fault reference.
type Operation struct {
	Name   string   `json:"name"`
	Input  string   `json:"input,omitempty"`
	Output string   `json:"output,omitempty"`
	Faults []string `json:"faults,omitempty"`
}
