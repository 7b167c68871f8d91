package sgl

// Manager owns every context created through it, tracks which one is
// current, and holds the sticky error register. It corresponds to the
// original's process-wide SceneManager, scoped per-instance so that
// independent Managers (e.g. parallel tests) never share error state.
type Manager struct {
	contexts  map[int]*Context
	nextID    int
	currentID int
	errorCode ErrorCode
	opts      managerOptions
}

// NewManager constructs a Manager with no contexts and no current
// context (GetContext returns -1 until SetContext succeeds).
func NewManager(opts ...ManagerOption) *Manager {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}
	return &Manager{
		contexts:  make(map[int]*Context),
		currentID: -1,
		opts:      o,
	}
}

// Init is a lifecycle no-op reserved for symmetry with Finish; Manager
// requires no setup beyond construction.
func (m *Manager) Init() {}

// Finish releases every owned context.
func (m *Manager) Finish() {
	m.contexts = make(map[int]*Context)
	m.currentID = -1
}

// CreateContext allocates a new context of the given dimensions and
// returns its handle. Handles are monotonically increasing and never
// reused, even after DestroyContext, so a stale handle can never alias
// a live context.
func (m *Manager) CreateContext(width, height int) int {
	if width <= 0 || height <= 0 {
		m.setError(InvalidValue)
		return -1
	}
	id := m.nextID
	m.nextID++
	m.contexts[id] = newContext(width, height)
	Logger().Debug("context created", "id", id, "width", width, "height", height)
	return id
}

// DestroyContext releases the context with the given handle. Destroying
// the current context, or an unknown handle, is an error; the current
// context is left untouched in either case.
func (m *Manager) DestroyContext(id int) {
	if id == m.currentID {
		m.setError(InvalidOperation)
		return
	}
	if _, ok := m.contexts[id]; !ok {
		m.setError(InvalidValue)
		return
	}
	delete(m.contexts, id)
	Logger().Debug("context destroyed", "id", id)
}

// SetContext makes id the current context. An unknown handle raises
// InvalidValue and leaves the current context unchanged.
func (m *Manager) SetContext(id int) {
	if _, ok := m.contexts[id]; !ok {
		m.setError(InvalidValue)
		return
	}
	m.currentID = id
}

// GetContext returns the current context's handle, or -1 if none.
func (m *Manager) GetContext() int {
	return m.currentID
}

// GetColorBufferPointer returns the current context's color buffer as
// a contiguous w*h*3 float slice (interleaved RGB), or nil if there is
// no current context.
func (m *Manager) GetColorBufferPointer() []float32 {
	c, ok := m.current()
	if !ok {
		return nil
	}
	return c.buf.Color
}

// current returns the current context, raising InvalidOperation and
// returning (nil, false) if there is none.
func (m *Manager) current() (*Context, bool) {
	c, ok := m.contexts[m.currentID]
	if !ok {
		m.setError(InvalidOperation)
		return nil, false
	}
	return c, true
}

// stateContext is the standard guard chain for state-mutating commands
// (anything outside Begin/End): current context must exist and must
// not be inside a begin/end block.
func (m *Manager) stateContext() (*Context, bool) {
	c, ok := m.current()
	if !ok {
		return nil, false
	}
	if c.insideBegin {
		m.setError(InvalidOperation)
		return nil, false
	}
	return c, true
}

// drawContext is the guard chain for commands that are only legal
// inside a Begin/End block (Vertex2f/3f, End itself).
func (m *Manager) drawContext() (*Context, bool) {
	c, ok := m.current()
	if !ok {
		return nil, false
	}
	if !c.insideBegin {
		m.setError(InvalidOperation)
		return nil, false
	}
	return c, true
}

// sceneContext is the guard chain for commands legal only inside a
// BeginScene/EndScene block (Sphere, Material, PointLight, ...).
func (m *Manager) sceneContext() (*Context, bool) {
	c, ok := m.current()
	if !ok {
		return nil, false
	}
	if !c.insideBeginScene {
		m.setError(InvalidOperation)
		return nil, false
	}
	return c, true
}

// nonSceneContext is the guard chain for commands illegal inside a
// BeginScene/EndScene block (RayTraceScene, RasterizeScene).
func (m *Manager) nonSceneContext() (*Context, bool) {
	c, ok := m.current()
	if !ok {
		return nil, false
	}
	if c.insideBeginScene {
		m.setError(InvalidOperation)
		return nil, false
	}
	return c, true
}
