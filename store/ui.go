package store

// NoticeKind classifies a transient user-facing notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is one dismissible message shown by the rendering layer.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// UI holds cross-cutting presentation state: theme and the queue of
// transient notices. It never talks to the network.
type UI struct {
	state
	root *Root
	deps Deps

	darkTheme bool
	notices   []Notice
}

func newUI(root *Root, deps Deps) *UI {
	return &UI{root: root, deps: deps}
}

// UISnapshot is an atomic copy of the presentation state.
type UISnapshot struct {
	DarkTheme bool
	Notices   []Notice
}

func (s *UI) Snapshot() UISnapshot {
	var snap UISnapshot
	s.read(func() {
		snap.DarkTheme = s.darkTheme
		snap.Notices = append([]Notice(nil), s.notices...)
	})
	return snap
}

// SetDarkTheme flips the theme flag.
func (s *UI) SetDarkTheme(on bool) {
	s.mutate(func() { s.darkTheme = on })
}

// Notify enqueues a transient notice.
func (s *UI) Notify(kind NoticeKind, message string) {
	s.mutate(func() { s.notices = append(s.notices, Notice{Kind: kind, Message: message}) })
}

// DismissNotice drops the oldest notice; no-op on an empty queue.
func (s *UI) DismissNotice() {
	s.mutate(func() {
		if len(s.notices) > 0 {
			s.notices = s.notices[1:]
		}
	})
}

func (s *UI) resetState() {
	s.reset(func() {
		s.darkTheme = false
		s.notices = nil
	})
}
