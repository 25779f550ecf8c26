package pet

import (
	"github.com/fintamago/fintamago/pkg/entities"
)

// subscriberBuffer is how many state updates a subscriber channel can lag
// behind before updates are dropped
const subscriberBuffer = 8

// Subscribe returns a channel that receives the user's pet state after every
// save. Delivery is best-effort: a subscriber that stops draining its channel
// misses updates instead of blocking the engine.
func (s *Service) Subscribe(userID string) <-chan *entities.PetState {
	ch := make(chan *entities.PetState, subscriberBuffer)

	s.subsMu.Lock()
	s.subscribers[userID] = append(s.subscribers[userID], ch)
	s.subsMu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel
func (s *Service) Unsubscribe(userID string, ch <-chan *entities.PetState) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	subs := s.subscribers[userID]
	for i, sub := range subs {
		if sub == ch {
			s.subscribers[userID] = append(subs[:i], subs[i+1:]...)
			close(sub)
			break
		}
	}
	if len(s.subscribers[userID]) == 0 {
		delete(s.subscribers, userID)
	}
}

// notify fans the saved state out to the user's subscribers without blocking
func (s *Service) notify(state *entities.PetState) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for _, ch := range s.subscribers[state.UserID] {
		stateCopy := *state
		stateCopy.UnlockedPets = append([]entities.PetID(nil), state.UnlockedPets...)
		stateCopy.Accessories = append([]string(nil), state.Accessories...)
		select {
		case ch <- &stateCopy:
		default:
			// Subscriber is lagging; drop rather than stall a mutation
		}
	}
}
