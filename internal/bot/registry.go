package bot

import "sync"

// sentLogLimit bounds the registry; old entries age out FIFO. A restart
// forgets everything, matching the process-lifetime scope of the
// activation flag.
const sentLogLimit = 4096

type sentKey struct {
	chatID    int64
	messageID int
}

// sentLog remembers which messages the bot itself sent, so moderation only
// ever deletes the bot's own output.
type sentLog struct {
	mu    sync.Mutex
	seen  map[sentKey]struct{}
	order []sentKey
	limit int
}

func newSentLog(limit int) *sentLog {
	return &sentLog{
		seen:  make(map[sentKey]struct{}),
		limit: limit,
	}
}

func (s *sentLog) add(chatID int64, messageID int) {
	key := sentKey{chatID, messageID}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, key)

	for len(s.order) > s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.seen, oldest)
	}
}

func (s *sentLog) contains(chatID int64, messageID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.seen[sentKey{chatID, messageID}]
	return ok
}

func (s *sentLog) remove(chatID int64, messageID int) {
	key := sentKey{chatID, messageID}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.seen, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
