// Package editor keeps a visual GraphQL schema editor in sync with its
// source text.
//
// A Controller owns two trees: the editable schema and the read-only
// libraries it may extend. Mutations change the editable tree, regenerate
// canonical text and report it synchronously; new text is parsed back into
// trees that keep the identity, placement and selection of every node that
// survived the edit.
package editor

import (
	"context"
	"regexp"
	"text/scanner"

	"github.com/graph-gophers/graphql-editor/ast"
	"github.com/graph-gophers/graphql-editor/codec"
	"github.com/graph-gophers/graphql-editor/config"
	"github.com/graph-gophers/graphql-editor/errors"
	"github.com/graph-gophers/graphql-editor/log"
	"github.com/graph-gophers/graphql-editor/trace/noop"
	"github.com/graph-gophers/graphql-editor/trace/tracer"
	"github.com/segmentio/ksuid"
)

// Viewport is the part of the diagram the controller can steer.
type Viewport interface {
	CenterOnNode(n *ast.Node)
}

// Controller is the graph controller of one editor. It is not safe for
// concurrent use.
type Controller struct {
	tree      *ast.Tree
	library   *ast.Tree
	schema    string
	libraries string
	errs      string
	readOnly  bool
	selected  []string
	menu      string
	viewport  Viewport

	onGraph     func(schema, libraries string)
	onErrors    func(errs string)
	onSelection func(nodes []*ast.Node)

	ctx    context.Context
	logger log.Logger
	tracer tracer.Tracer
	load   Load
	mw     []Middleware
}

// ControllerOpt is an option for NewController.
type ControllerOpt func(*Controller)

// Logger is used to log panics raised by subscribers.
func Logger(logger log.Logger) ControllerOpt {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Tracer is used to trace mutations and parsing. It defaults to noop.Tracer.
func Tracer(t tracer.Tracer) ControllerOpt {
	return func(c *Controller) {
		c.tracer = t
	}
}

// ReadOnly starts the controller with mutations disabled.
func ReadOnly() ControllerOpt {
	return func(c *Controller) {
		c.readOnly = true
	}
}

// UseConfig applies the options of cfg that concern the controller.
func UseConfig(cfg *config.Config) ControllerOpt {
	return func(c *Controller) {
		if cfg != nil {
			c.readOnly = cfg.ReadOnly
		}
	}
}

// UseMiddleware wraps parsing with the given middlewares. The first one is
// the outermost.
func UseMiddleware(mw ...Middleware) ControllerOpt {
	return func(c *Controller) {
		c.mw = append(c.mw, mw...)
	}
}

// WithContext sets the context handed to the tracer and logger.
func WithContext(ctx context.Context) ControllerOpt {
	return func(c *Controller) {
		c.ctx = ctx
	}
}

// NewController returns a controller with empty trees.
func NewController(opts ...ControllerOpt) *Controller {
	c := &Controller{
		tree:    &ast.Tree{},
		library: &ast.Tree{},
		ctx:     context.Background(),
		logger:  &log.DefaultLogger{},
		tracer:  noop.Tracer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.load = parse
	for i := len(c.mw) - 1; i >= 0; i-- {
		c.load = c.mw[i](c.load)
	}
	return c
}

// OnGraphChanged registers the subscriber for regenerated text. A later
// registration replaces the previous one.
func (c *Controller) OnGraphChanged(fn func(schema, libraries string)) {
	c.onGraph = fn
}

// OnErrors registers the subscriber for parse error messages.
func (c *Controller) OnErrors(fn func(errs string)) {
	c.onErrors = fn
}

// OnSelectionChanged registers the subscriber for selection changes.
func (c *Controller) OnSelectionChanged(fn func(nodes []*ast.Node)) {
	c.onSelection = fn
}

// SetViewport attaches the diagram viewport used by CenterOnNodeByID.
func (c *Controller) SetViewport(vp Viewport) {
	c.viewport = vp
}

// SetReadOnly toggles mutations. Turning it on closes the directive menu.
func (c *Controller) SetReadOnly(readOnly bool) {
	c.readOnly = readOnly
	if readOnly {
		c.menu = ""
	}
}

// ReadOnly reports whether mutations are ignored.
func (c *Controller) ReadOnly() bool { return c.readOnly }

// Schema returns the canonical text of the editable tree.
func (c *Controller) Schema() string { return c.schema }

// Libraries returns the canonical text of the library tree.
func (c *Controller) Libraries() string { return c.libraries }

// Errors returns the message of the last failed load, or "".
func (c *Controller) Errors() string { return c.errs }

// Tree returns a copy of the editable tree.
func (c *Controller) Tree() *ast.Tree { return c.tree.Clone() }

// Nodes returns copies of the editable nodes in order.
func (c *Controller) Nodes() []*ast.Node { return cloneAll(c.tree.Nodes) }

// LibraryNodes returns copies of the library nodes in order.
func (c *Controller) LibraryNodes() []*ast.Node { return cloneAll(c.library.Nodes) }

// AllNodes returns copies of the editable nodes followed by the library
// nodes.
func (c *Controller) AllNodes() []*ast.Node { return cloneAll(ast.Concat(c.tree, c.library)) }

// Node returns a copy of the node with the given ID at any depth of either
// tree, or nil.
func (c *Controller) Node(id string) *ast.Node {
	if n, _ := c.find(id, true); n != nil {
		return n.Clone()
	}
	return nil
}

// LoadGraphQLAndLibraries replaces both trees with the parsed text. Nodes
// that match a previous node by name, kind and occurrence keep its ID and
// position. On failure the trees are kept and the error is reported.
func (c *Controller) LoadGraphQLAndLibraries(schema, libraries string) error {
	ctx, finish := c.tracer.TraceParse(c.ctx, len(schema), len(libraries))
	tree, library, err := c.load(ctx, schema, libraries)
	if err != nil {
		perr, ok := errors.As(err)
		if !ok {
			perr = &errors.ParseError{Message: err.Error(), Err: err}
		}
		finish(perr)
		c.errs = perr.Error()
		c.notify(func() {
			if c.onErrors != nil {
				c.onErrors(c.errs)
			}
		})
		return perr
	}
	finish(nil)

	reconcile(c.tree.Nodes, tree.Nodes)
	reconcile(c.library.Nodes, library.Nodes)
	c.tree, c.library = tree, library
	c.libraries = codec.Serialize(library)
	c.closeStaleMenu()
	c.filterSelection()
	c.sync()
	return nil
}

// AddExtension appends an empty extension of target, which may be an
// editable or a library definition. Kinds that cannot be extended are
// ignored.
func (c *Controller) AddExtension(target *ast.Node) {
	applied := false
	_, finish := c.tracer.TraceMutation(c.ctx, "AddExtension", nameOf(target))
	defer func() { finish(applied) }()

	if c.readOnly || target == nil {
		return
	}
	ext, ok := ast.ResolveExtension(target.Kind())
	if !ok || c.base(target.Name, target.Kind()) == nil {
		return
	}
	n := &ast.Node{
		ID:   newID(),
		Name: target.Name,
		Data: ast.Data{Type: ext},
		Type: ast.Named(ast.DisplayName(ext)),
	}
	c.tree.Nodes = append(c.tree.Nodes, n)
	applied = true
	c.sync()
}

// AddNode appends an empty definition of kind k. It is ignored for kinds
// other than definitions, for invalid names and for names already defined
// in either tree.
func (c *Controller) AddNode(k ast.Kind, name string) {
	applied := false
	_, finish := c.tracer.TraceMutation(c.ctx, "AddNode", name)
	defer func() { finish(applied) }()

	if c.readOnly || !k.IsDefinition() || !validName(name) {
		return
	}
	directive := k == ast.DirectiveDefinition
	if c.tree.Definition(name, directive) != nil || c.library.Definition(name, directive) != nil {
		return
	}
	n := ast.NewDefinition(k, name)
	n.ID = newID()
	if directive {
		n.Locations = []string{"FIELD_DEFINITION"}
	}
	c.tree.Nodes = append(c.tree.Nodes, n)
	applied = true
	c.sync()
}

// AddField appends a copy of field to the children of the editable node
// parentID. The field kind must match the parent: fields on object and
// interface types, input values on input types and directive definitions,
// enum values on enums.
func (c *Controller) AddField(parentID string, field *ast.Node) {
	applied := false
	_, finish := c.tracer.TraceMutation(c.ctx, "AddField", nameOf(field))
	defer func() { finish(applied) }()

	if c.readOnly || field == nil || !validName(field.Name) {
		return
	}
	parent, _ := c.find(parentID, false)
	if parent == nil || !accepts(parent.Kind(), field) || parent.Arg(field.Name) != nil {
		return
	}
	if !wellFormed(field) {
		return
	}
	f := field.Clone()
	if f.Kind() == ast.EnumValueDefinition {
		f.Type = ast.Named(ast.DisplayName(ast.EnumValueDefinition))
	}
	assignIDs(f)
	parent.Args = append(parent.Args, f)
	applied = true
	c.sync()
}

// DeleteField removes the child named name from the editable node parentID.
func (c *Controller) DeleteField(parentID, name string) {
	applied := false
	_, finish := c.tracer.TraceMutation(c.ctx, "DeleteField", name)
	defer func() { finish(applied) }()

	if c.readOnly {
		return
	}
	parent, _ := c.find(parentID, false)
	if parent == nil {
		return
	}
	for i, a := range parent.Args {
		if a.Name == name {
			parent.Args = append(parent.Args[:i:i], parent.Args[i+1:]...)
			applied = true
			c.closeStaleMenu()
			c.filterSelection()
			c.sync()
			return
		}
	}
}

// DeleteNode removes the top-level editable node id. Deleting a definition
// also removes its extensions.
func (c *Controller) DeleteNode(id string) {
	applied := false
	_, finish := c.tracer.TraceMutation(c.ctx, "DeleteNode", id)
	defer func() { finish(applied) }()

	if c.readOnly {
		return
	}
	var target *ast.Node
	for _, n := range c.tree.Nodes {
		if n.ID == id {
			target = n
			break
		}
	}
	if target == nil {
		return
	}
	ext, extendable := ast.ResolveExtension(target.Kind())
	kept := c.tree.Nodes[:0:0]
	for _, n := range c.tree.Nodes {
		if n == target || (extendable && n.Name == target.Name && n.Kind() == ext) {
			continue
		}
		kept = append(kept, n)
	}
	c.tree.Nodes = kept
	applied = true
	c.closeStaleMenu()
	c.filterSelection()
	c.sync()
}

// AddDirective attaches a usage of the directive name to the editable node
// ownerID. Non-repeatable directives known to either tree are added at most
// once per node. Directive definitions and usages cannot carry directives.
func (c *Controller) AddDirective(ownerID, name string, args ...*ast.Node) {
	applied := false
	_, finish := c.tracer.TraceMutation(c.ctx, "AddDirective", name)
	defer func() { finish(applied) }()

	if c.readOnly || !validName(name) {
		return
	}
	owner, _ := c.find(ownerID, false)
	if owner == nil || owner.Kind() == ast.Directive || owner.Kind() == ast.Argument || owner.Kind() == ast.DirectiveDefinition {
		return
	}
	def := c.tree.Definition(name, true)
	if def == nil {
		def = c.library.Definition(name, true)
	}
	if def != nil && !def.Repeatable {
		for _, d := range owner.Directives {
			if d.Name == name {
				return
			}
		}
	}
	d := &ast.Node{
		Name: name,
		Data: ast.Data{Type: ast.Directive},
		Type: ast.Named(ast.DisplayName(ast.Directive)),
	}
	for _, a := range args {
		if a == nil || !validValue(a.Value) || len(a.Args) > 0 || len(a.Directives) > 0 {
			return
		}
		arg := a.Clone()
		arg.Data.Type = ast.Argument
		arg.Type = ast.Named(ast.DisplayName(ast.Argument))
		d.Args = append(d.Args, arg)
	}
	if !validArguments(d.Args) {
		return
	}
	assignIDs(d)
	owner.Directives = append(owner.Directives, d)
	applied = true
	c.sync()
}

// ToggleDirectiveMenu opens or closes the detail menu of the directive
// usage id and reports whether it is open afterwards. Only one menu is open
// at a time and none while read-only.
func (c *Controller) ToggleDirectiveMenu(id string) bool {
	if c.readOnly {
		return false
	}
	if c.menu == id {
		c.menu = ""
		return false
	}
	if n, _ := c.find(id, false); n == nil || n.Kind() != ast.Directive {
		return false
	}
	c.menu = id
	return true
}

// DirectiveMenu returns the ID of the directive usage whose detail menu is
// open.
func (c *Controller) DirectiveMenu() string { return c.menu }

// closeStaleMenu closes the directive menu once its usage left the tree.
func (c *Controller) closeStaleMenu() {
	if n, _ := c.find(c.menu, false); n == nil {
		c.menu = ""
	}
}

// DeleteDirective removes the directive usage id from its owner.
func (c *Controller) DeleteDirective(id string) {
	applied := false
	_, finish := c.tracer.TraceMutation(c.ctx, "DeleteDirective", id)
	defer func() { finish(applied) }()

	if c.readOnly {
		return
	}
	n, owner := c.find(id, false)
	if n == nil || owner == nil || n.Kind() != ast.Directive {
		return
	}
	for i, d := range owner.Directives {
		if d == n {
			owner.Directives = append(owner.Directives[:i:i], owner.Directives[i+1:]...)
			break
		}
	}
	if c.menu == id {
		c.menu = ""
	}
	applied = true
	c.filterSelection()
	c.sync()
}

// Affordances lists the actions a directive entry offers.
type Affordances struct {
	EditArguments bool
	Delete        bool
}

// DirectiveAffordances reports the actions available on the entry id of a
// directive listing. Read-only editors and library nodes offer nothing;
// enum values never offer argument editing, nor do usages attached to them.
func (c *Controller) DirectiveAffordances(id string) Affordances {
	if c.readOnly {
		return Affordances{}
	}
	n, owner := c.find(id, false)
	if n == nil {
		return Affordances{}
	}
	enumValue := n.Kind() == ast.EnumValueDefinition ||
		(owner != nil && owner.Kind() == ast.EnumValueDefinition && n.Kind() == ast.Directive)
	return Affordances{
		EditArguments: !enumValue,
		Delete:        true,
	}
}

// SetPosition records where the diagram placed the node id. Positions are
// not part of the text and survive re-parses of matching nodes.
func (c *Controller) SetPosition(id string, pos ast.Position) {
	if n, _ := c.find(id, true); n != nil {
		n.Position = &pos
	}
}

// Select replaces the selection. Unknown IDs are dropped.
func (c *Controller) Select(ids ...string) {
	var sel []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if n, _ := c.find(id, true); n != nil {
			sel = append(sel, id)
		}
	}
	if equalIDs(sel, c.selected) {
		return
	}
	c.selected = sel
	c.selectionChanged()
}

// Selected returns copies of the selected nodes in selection order.
func (c *Controller) Selected() []*ast.Node {
	nodes := make([]*ast.Node, 0, len(c.selected))
	for _, id := range c.selected {
		if n, _ := c.find(id, true); n != nil {
			nodes = append(nodes, n.Clone())
		}
	}
	return nodes
}

// CenterOnNodeByID selects the node id and asks the viewport to center on
// it.
func (c *Controller) CenterOnNodeByID(id string) {
	n, _ := c.find(id, true)
	if n == nil {
		return
	}
	c.Select(id)
	if c.viewport != nil {
		vp, cp := c.viewport, n.Clone()
		c.notify(func() { vp.CenterOnNode(cp) })
	}
}

func (c *Controller) sync() {
	c.schema = codec.Serialize(c.tree)
	c.errs = ""
	c.notify(func() {
		if c.onGraph != nil {
			c.onGraph(c.schema, c.libraries)
		}
	})
}

func (c *Controller) filterSelection() {
	var sel []string
	for _, id := range c.selected {
		if n, _ := c.find(id, true); n != nil {
			sel = append(sel, id)
		}
	}
	if len(sel) == len(c.selected) {
		return
	}
	c.selected = sel
	c.selectionChanged()
}

func (c *Controller) selectionChanged() {
	c.notify(func() {
		if c.onSelection != nil {
			c.onSelection(c.Selected())
		}
	})
}

// notify runs a subscriber, logging instead of propagating its panics.
func (c *Controller) notify(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.LogPanic(c.ctx, r)
		}
	}()
	fn()
}

// find returns the node id and its parent, searching the library tree too
// when libraries is set.
func (c *Controller) find(id string, libraries bool) (node, parent *ast.Node) {
	if id == "" {
		return nil, nil
	}
	trees := []*ast.Tree{c.tree}
	if libraries {
		trees = append(trees, c.library)
	}
	for _, t := range trees {
		for _, top := range t.Nodes {
			if n, p := findIn(top, nil, id); n != nil {
				return n, p
			}
		}
	}
	return nil, nil
}

func findIn(n, parent *ast.Node, id string) (*ast.Node, *ast.Node) {
	if n.ID == id {
		return n, parent
	}
	for _, children := range [][]*ast.Node{n.Args, n.Directives} {
		for _, ch := range children {
			if found, p := findIn(ch, n, id); found != nil {
				return found, p
			}
		}
	}
	return nil, nil
}

// base returns the definition an extension of (name, kind) would extend.
func (c *Controller) base(name string, kind ast.Kind) *ast.Node {
	if n := c.tree.Find(name, kind); n != nil {
		return n
	}
	return c.library.Find(name, kind)
}

func accepts(parent ast.Kind, field *ast.Node) bool {
	if base, ok := ast.Base(parent); ok {
		parent = base
	}
	switch parent {
	case ast.ObjectTypeDefinition, ast.InterfaceTypeDefinition:
		return field.Kind() == ast.FieldDefinition && field.Type.NamedType() != ""
	case ast.InputObjectTypeDefinition, ast.DirectiveDefinition:
		return field.Kind() == ast.InputValueDefinition && field.Type.NamedType() != ""
	case ast.EnumTypeDefinition:
		return field.Kind() == ast.EnumValueDefinition
	case ast.FieldDefinition:
		return field.Kind() == ast.InputValueDefinition && field.Type.NamedType() != ""
	}
	return false
}

var nameRE = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

func validName(name string) bool {
	return nameRE.MatchString(name) && !(len(name) >= 2 && name[:2] == "__")
}

func reservedEnumValue(name string) bool {
	return name == "true" || name == "false" || name == "null"
}

var (
	intRE   = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	floatRE = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
)

// wellFormed reports whether the subtree rooted at a field, input value or
// enum value serializes to text that parses back to the same subtree.
func wellFormed(n *ast.Node) bool {
	if n == nil || !validName(n.Name) || !validDirectives(n.Directives) {
		return false
	}
	switch n.Kind() {
	case ast.FieldDefinition:
		if !validType(n.Type) || n.Value != nil {
			return false
		}
		seen := make(map[string]bool, len(n.Args))
		for _, a := range n.Args {
			if a == nil || a.Kind() != ast.InputValueDefinition || seen[a.Name] || !wellFormed(a) {
				return false
			}
			seen[a.Name] = true
		}
		return true
	case ast.InputValueDefinition:
		return validType(n.Type) && len(n.Args) == 0 && (n.Value == nil || validValue(n.Value))
	case ast.EnumValueDefinition:
		return len(n.Args) == 0 && n.Value == nil && !reservedEnumValue(n.Name)
	}
	return false
}

func validType(t ast.TypeRef) bool {
	for t.OfType != nil {
		if t.Name != "" {
			return false
		}
		t = *t.OfType
	}
	return nameRE.MatchString(t.Name)
}

func validDirectives(ds []*ast.Node) bool {
	for _, d := range ds {
		if d == nil || d.Kind() != ast.Directive || !validName(d.Name) || len(d.Directives) > 0 {
			return false
		}
		for _, a := range d.Args {
			if a == nil || a.Kind() != ast.Argument {
				return false
			}
		}
		if !validArguments(d.Args) {
			return false
		}
	}
	return true
}

func validArguments(args []*ast.Node) bool {
	seen := make(map[string]bool, len(args))
	for _, a := range args {
		if a == nil || !validName(a.Name) || seen[a.Name] || !validValue(a.Value) {
			return false
		}
		if len(a.Args) > 0 || len(a.Directives) > 0 {
			return false
		}
		seen[a.Name] = true
	}
	return true
}

func validValue(v ast.Value) bool {
	switch v := v.(type) {
	case *ast.PrimitiveValue:
		if v == nil {
			return false
		}
		switch v.Type {
		case scanner.Int:
			return intRE.MatchString(v.Text)
		case scanner.Float:
			return floatRE.MatchString(v.Text)
		case scanner.Ident:
			return nameRE.MatchString(v.Text) && v.Text != "null"
		}
		return false
	case *ast.StringValue:
		return v != nil
	case *ast.NullValue:
		return v != nil
	case *ast.ListValue:
		if v == nil {
			return false
		}
		for _, e := range v.Values {
			if !validValue(e) {
				return false
			}
		}
		return true
	case *ast.ObjectValue:
		if v == nil {
			return false
		}
		for _, f := range v.Fields {
			if f == nil || !validName(f.Name) || !validValue(f.Value) {
				return false
			}
		}
		return true
	}
	return false
}

func newID() string {
	return ksuid.New().String()
}

func assignIDs(n *ast.Node) {
	n.Walk(func(n *ast.Node) bool {
		n.ID = newID()
		return true
	})
}

func cloneAll(nodes []*ast.Node) []*ast.Node {
	c := make([]*ast.Node, len(nodes))
	for i, n := range nodes {
		c[i] = n.Clone()
	}
	return c
}

func nameOf(n *ast.Node) string {
	if n == nil {
		return ""
	}
	return n.Name
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
