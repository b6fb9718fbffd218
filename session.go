package editor

import (
	"github.com/graph-gophers/graphql-editor/config"
	"github.com/graph-gophers/graphql-editor/view"
)

// Session joins a controller with the view coordinator of one editor
// window. The controller is handed out, and the initial text loaded, once
// the diagram surface is attached.
type Session struct {
	controller *Controller
	view       *view.Coordinator
	config     *config.Config
	access     func(*Controller)
	ctrlOpts   []ControllerOpt

	schema    string
	libraries string
	loadErr   error
}

// SessionOpt is an option for NewSession.
type SessionOpt func(*Session)

// WithControllerAccess registers fn to receive the controller once the
// diagram is attached.
func WithControllerAccess(fn func(*Controller)) SessionOpt {
	return func(s *Session) {
		s.access = fn
	}
}

// WithConfig replaces config.Default().
func WithConfig(cfg *config.Config) SessionOpt {
	return func(s *Session) {
		s.config = cfg
	}
}

// WithControllerOpts passes options to the session's controller.
func WithControllerOpts(opts ...ControllerOpt) SessionOpt {
	return func(s *Session) {
		s.ctrlOpts = append(s.ctrlOpts, opts...)
	}
}

// WithSchema sets the text loaded on attach.
func WithSchema(schema, libraries string) SessionOpt {
	return func(s *Session) {
		s.schema, s.libraries = schema, libraries
	}
}

func NewSession(opts ...SessionOpt) *Session {
	s := &Session{config: config.Default()}
	for _, opt := range opts {
		opt(s)
	}
	ctrlOpts := append([]ControllerOpt{UseConfig(s.config)}, s.ctrlOpts...)
	s.controller = NewController(ctrlOpts...)
	s.view = view.NewCoordinator(s.config.InitialPane)
	s.view.OnAttach(s.attached)
	return s
}

func (s *Session) attached(surface view.Surface) {
	if vp, ok := surface.(Viewport); ok {
		s.controller.SetViewport(vp)
	}
	if s.access != nil {
		s.access(s.controller)
	}
	s.loadErr = s.controller.LoadGraphQLAndLibraries(s.schema, s.libraries)
}

// Controller returns the session's controller.
func (s *Session) Controller() *Controller { return s.controller }

// View returns the session's view coordinator.
func (s *Session) View() *view.Coordinator { return s.view }

// LoadErr returns the parse error of the load run on attach, if any. The
// same error also reaches the controller's error callback.
func (s *Session) LoadErr() error { return s.loadErr }

// SetSchema replaces both texts. They are parsed right away when the
// diagram is attached, otherwise on attach.
func (s *Session) SetSchema(schema, libraries string) error {
	s.schema, s.libraries = schema, libraries
	if s.view.Attach() != view.Attached {
		return nil
	}
	s.loadErr = s.controller.LoadGraphQLAndLibraries(schema, libraries)
	return s.loadErr
}

// Edit loads text typed into the code pane against the current libraries.
func (s *Session) Edit(schema string) error {
	return s.SetSchema(schema, s.libraries)
}

// SetReadOnly toggles mutations and closes open menus.
func (s *Session) SetReadOnly(readOnly bool) {
	s.controller.SetReadOnly(readOnly)
	if readOnly {
		s.view.CloseMenus()
	}
}
