package conversation

// Repository is the storage contract the manager needs. The in-memory
// implementation lives in internal/repository/memory.
type Repository interface {
	Save(state *State)
	Get(conversationID string) (*State, bool)
	Delete(conversationID string)
}

// Manager hands out conversation state keyed by conversation ID.
type Manager struct {
	repo Repository
}

func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo}
}

// LoadOrCreate retrieves the conversation, creating a fresh one when none
// exists or it has expired.
func (m *Manager) LoadOrCreate(conversationID string) *State {
	if state, found := m.repo.Get(conversationID); found {
		return state
	}
	return NewState(conversationID)
}

// Save persists the state for the next turn.
func (m *Manager) Save(state *State) {
	m.repo.Save(state)
}

// Reset drops a conversation entirely.
func (m *Manager) Reset(conversationID string) {
	m.repo.Delete(conversationID)
}
