package wsdl

import (
	"strconv"
	"strings"

	"github.com/agentflare-ai/go-xmldom"
	"github.com/rs/zerolog"
)

// DOM node type codes, matching the numbering go-xmldom follows.
const (
	elementNode = 1 // ELEMENT_NODE
	textNode    = 3 // TEXT_NODE
)

// Parse extracts the typed model from the raw bytes of a WSDL document
// using the default options. Either a complete Definitions is returned or
// an error; there is no partial result.
func Parse(data []byte) (*Definitions, error) {
	return ParseWithOptions(data, NewOptions())
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(data []byte, opts Options) (*Definitions, error) {
	doc, err := xmldom.NewDecoderFromBytes(data).Decode()
	if err != nil {
		return nil, parseError(err)
	}
	opts.log().Trace().Int("bytes", len(data)).Msg("decoded wsdl document")
	return ParseDocument(doc, opts)
}

// ParseDocument extracts the typed model from an already decoded document.
// The document is not mutated. Extraction runs the stages in document
// order: targetNamespace read, type table, message table, operation table,
// service name. The first failure aborts the whole extraction.
func ParseDocument(doc xmldom.Document, opts Options) (*Definitions, error) {
	if doc == nil {
		return nil, elementNotFound("definitions")
	}
	root := doc.DocumentElement()
	if root == nil {
		return nil, elementNotFound("definitions")
	}

	if !root.HasAttribute("targetNamespace") {
		return nil, attributeNotFound("targetNamespace")
	}

	ex := &extractor{opts: opts, log: opts.log()}
	defs := &Definitions{
		TargetNamespace: string(root.GetAttribute("targetNamespace")),
		Types:           make(map[string]Type),
		Messages:        make(map[string]*Message),
		Operations:      make(map[string]*Operation),
	}

	if err := ex.extractTypes(root, defs); err != nil {
		return nil, err
	}
	if err := ex.extractMessages(root, defs); err != nil {
		return nil, err
	}
	if err := ex.extractOperations(root, defs); err != nil {
		return nil, err
	}

	service := childByLocalName(root, "service")
	if service == nil {
		return nil, elementNotFound("service")
	}
	if !service.HasAttribute("name") {
		return nil, attributeNotFound("name")
	}
	defs.Name = string(service.GetAttribute("name"))

	ex.log.Debug().
		Str("service", defs.Name).
		Str("targetNamespace", defs.TargetNamespace).
		Int("types", len(defs.Types)).
		Int("messages", len(defs.Messages)).
		Int("operations", len(defs.Operations)).
		Msg("extracted wsdl model")
	return defs, nil
}

type extractor struct {
	opts Options
	log  *zerolog.Logger
}

// extractTypes builds the type table from the first schema under the types
// element.
func (ex *extractor) extractTypes(root xmldom.Element, defs *Definitions) error {
	typesEl := childByLocalName(root, "types")
	if typesEl == nil {
		return elementNotFound("types")
	}
	schema := firstElement(typesEl)
	if schema == nil {
		return emptyElement("types")
	}

	children := schema.Children()
	for i := uint(0); i < children.Length(); i++ {
		decl := children.Item(i)
		if decl == nil {
			continue
		}
		if err := ex.extractType(decl, defs); err != nil {
			return err
		}
	}
	return nil
}

// extractType handles one top-level type declaration. Two shapes are
// accepted: a bare <complexType name="X"> and an <element name="X">
// wrapping a <complexType>. Both resolve to the same complexType body
// before field extraction; anything else is unsupported.
func (ex *extractor) extractType(decl xmldom.Element, defs *Definitions) error {
	if !decl.HasAttribute("name") {
		return attributeNotFound("name")
	}
	name := string(decl.GetAttribute("name"))
	ex.log.Trace().Str("type", name).Msg("extracting type")

	body := decl
	if string(decl.LocalName()) != "complexType" {
		child, err := firstChildElement(decl)
		if err != nil {
			return err
		}
		body = child
	}
	if string(body.LocalName()) != "complexType" {
		return unsupported("type declaration", nil)
	}

	// The complexType's first child is the field sequence container.
	seq, err := firstChildElement(body)
	if err != nil {
		return err
	}

	fields := make(map[string]Field)
	members := seq.Children()
	for i := uint(0); i < members.Length(); i++ {
		member := members.Item(i)
		if member == nil {
			continue
		}
		fieldName, field, err := ex.extractField(member)
		if err != nil {
			return err
		}
		if _, ok := fields[fieldName]; ok && ex.opts.strictNames {
			return duplicateName(fieldName)
		}
		fields[fieldName] = field
	}

	if _, ok := defs.Types[name]; ok && ex.opts.strictNames {
		return duplicateName(name)
	}
	defs.Types[name] = &ComplexType{Name: name, Fields: fields}
	return nil
}

// extractField reads one sequence member: required name and type
// attributes, the nillable flag, and the occurrence bounds with the
// single-value collapse applied.
func (ex *extractor) extractField(member xmldom.Element) (string, Field, error) {
	if !member.HasAttribute("name") {
		return "", Field{}, attributeNotFound("name")
	}
	if !member.HasAttribute("type") {
		return "", Field{}, attributeNotFound("type")
	}
	name := string(member.GetAttribute("name"))
	declared := string(member.GetAttribute("type"))

	attr := TypeAttribute{
		Nillable: string(member.GetAttribute("nillable")) == "true",
	}
	min, err := occurrenceOf(member, "minOccurs")
	if err != nil {
		return "", Field{}, err
	}
	max, err := occurrenceOf(member, "maxOccurs")
	if err != nil {
		return "", Field{}, err
	}
	attr.MinOccurs, attr.MaxOccurs = min, max
	normalizeOccurs(&attr)

	ex.log.Trace().Str("field", name).Str("type", declared).Msg("extracted field")
	return name, Field{Attr: attr, Type: simpleTypeOf(splitNamespace(declared))}, nil
}

// extractMessages builds the message table from the root's message
// children. Only the first part of each message is recorded.
func (ex *extractor) extractMessages(root xmldom.Element, defs *Definitions) error {
	children := root.Children()
	for i := uint(0); i < children.Length(); i++ {
		msg := children.Item(i)
		if msg == nil || string(msg.LocalName()) != "message" {
			continue
		}
		if !msg.HasAttribute("name") {
			return attributeNotFound("name")
		}
		name := string(msg.GetAttribute("name"))

		part := firstElement(msg)
		if part == nil {
			return emptyElement("message")
		}
		if ex.opts.strictParts && countElementChildren(msg) > 1 {
			return unsupported("message part", nil)
		}
		if !part.HasAttribute("name") {
			return attributeNotFound("name")
		}
		if !part.HasAttribute("element") {
			return attributeNotFound("element")
		}

		m := &Message{
			PartName:    string(part.GetAttribute("name")),
			PartElement: splitNamespace(string(part.GetAttribute("element"))),
		}
		if _, ok := defs.Messages[name]; ok && ex.opts.strictNames {
			return duplicateName(name)
		}
		ex.log.Trace().Str("message", name).Str("element", m.PartElement).Msg("extracted message")
		defs.Messages[name] = m
	}
	return nil
}

// extractOperations builds the operation table from the portType element.
// Among an operation's children only elements carrying a message attribute
// participate; input and output overwrite earlier values, faults
// accumulate, and any other tag name is fatal.
func (ex *extractor) extractOperations(root xmldom.Element, defs *Definitions) error {
	portType := childByLocalName(root, "portType")
	if portType == nil {
		return elementNotFound("portType")
	}

	children := portType.Children()
	for i := uint(0); i < children.Length(); i++ {
		op := children.Item(i)
		if op == nil {
			continue
		}
		if !op.HasAttribute("name") {
			return attributeNotFound("name")
		}
		name := string(op.GetAttribute("name"))

		operation := &Operation{Name: name}
		members := op.Children()
		for j := uint(0); j < members.Length(); j++ {
			member := members.Item(j)
			if member == nil || !member.HasAttribute("message") {
				continue
			}
			message := splitNamespace(string(member.GetAttribute("message")))
			switch string(member.LocalName()) {
			case "input":
				operation.Input = message
			case "output":
				operation.Output = message
			case "fault":
				operation.Faults = append(operation.Faults, message)
			default:
				return elementNotFound("operation member")
			}
		}

		if _, ok := defs.Operations[name]; ok && ex.opts.strictNames {
			return duplicateName(name)
		}
		ex.log.Trace().
			Str("operation", name).
			Str("input", operation.Input).
			Str("output", operation.Output).
			Msg("extracted operation")
		defs.Operations[name] = operation
	}
	return nil
}

// occurrenceOf reads one occurrence bound attribute: absent means no bound,
// the literal "unbounded" the unbounded marker, anything else must be a
// non-negative integer.
func occurrenceOf(elem xmldom.Element, attr string) (*Occurrence, error) {
	if !elem.HasAttribute(xmldom.DOMString(attr)) {
		return nil, nil
	}
	value := string(elem.GetAttribute(xmldom.DOMString(attr)))
	if value == "unbounded" {
		return &Occurrence{Unbounded: true}, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, unsupported(attr, err)
	}
	return &Occurrence{Count: uint32(n)}, nil
}

// normalizeOccurs collapses the two single-value bound pairs onto the
// nillable flag: (0,1) becomes optional and (1,1) required, both with the
// bounds cleared. Exactly these pairs collapse; every other combination,
// including single-sided bounds, passes through unchanged.
func normalizeOccurs(attr *TypeAttribute) {
	min, max := attr.MinOccurs, attr.MaxOccurs
	if min == nil || max == nil || min.Unbounded || max.Unbounded {
		return
	}
	switch {
	case min.Count == 0 && max.Count == 1:
		attr.Nillable = true
	case min.Count == 1 && max.Count == 1:
		attr.Nillable = false
	default:
		return
	}
	attr.MinOccurs, attr.MaxOccurs = nil, nil
}

// splitNamespace strips any namespace prefix up to and including the first
// colon, reducing a qualified name to its local name. Prefixes are not
// tracked, so two prefixes sharing a local name collide silently; a
// namespace-aware strategy would replace this single function.
func splitNamespace(s string) string {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// childByLocalName returns the first child element with the given local
// name, or nil.
func childByLocalName(elem xmldom.Element, name string) xmldom.Element {
	children := elem.Children()
	for i := uint(0); i < children.Length(); i++ {
		if child := children.Item(i); child != nil && string(child.LocalName()) == name {
			return child
		}
	}
	return nil
}

// firstElement returns the first child that is an element, or nil.
func firstElement(elem xmldom.Element) xmldom.Element {
	children := elem.Children()
	for i := uint(0); i < children.Length(); i++ {
		if child := children.Item(i); child != nil {
			return child
		}
	}
	return nil
}

// firstChildElement returns the first child node as an element. A container
// with no children is ErrEmpty; a first child that is a comment or
// non-blank text rather than an element is ErrNotAnElement. Whitespace-only
// text between elements does not count as a child.
func firstChildElement(elem xmldom.Element) (xmldom.Element, error) {
	nodes := elem.ChildNodes()
	for i := uint(0); i < nodes.Length(); i++ {
		node := nodes.Item(i)
		if node == nil {
			continue
		}
		if node.NodeType() == textNode && strings.TrimSpace(string(node.NodeValue())) == "" {
			continue
		}
		if node.NodeType() != elementNode {
			return nil, notAnElement(string(elem.LocalName()))
		}
		// The first non-blank node is an element, so it is also the first
		// entry of the element-filtered child list.
		if child := firstElement(elem); child != nil {
			return child, nil
		}
		return nil, notAnElement(string(elem.LocalName()))
	}
	return nil, emptyElement(string(elem.LocalName()))
}

// countElementChildren counts an element's child elements.
func countElementChildren(elem xmldom.Element) int {
	children := elem.Children()
	n := 0
	for i := uint(0); i < children.Length(); i++ {
		if children.Item(i) != nil {
			n++
		}
	}
	return n
}
