package session

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	followCookieName = "nikofree_follow"
	followedKey      = "followed"
)

// MaxFollowed bounds how many partners the follow cookie remembers. The
// least recently touched partner is dropped first.
const MaxFollowed = 40

// Followed is the follow button state remembered for one partner
type Followed struct {
	PartnerID int  `json:"p"`
	Followers int  `json:"n"`
	MenuOpen  bool `json:"m,omitempty"`
}

// Followed returns the remembered state for partnerID. ok is false when the
// visitor does not follow the partner.
func (s *Store) Followed(r *http.Request, partnerID int) (Followed, bool) {
	for _, f := range s.followed(r) {
		if f.PartnerID == partnerID {
			return f, true
		}
	}
	return Followed{}, false
}

// SetFollowed remembers f as the most recent follow, evicting the oldest
// entries beyond MaxFollowed. It never touches the session cookie.
func (s *Store) SetFollowed(w http.ResponseWriter, r *http.Request, f Followed) error {
	if f.Followers < 0 {
		f.Followers = 0
	}
	list := append([]Followed{f}, without(s.followed(r), f.PartnerID)...)
	if len(list) > MaxFollowed {
		list = list[:MaxFollowed]
	}
	return s.saveFollowed(w, r, list)
}

// RemoveFollowed forgets partnerID
func (s *Store) RemoveFollowed(w http.ResponseWriter, r *http.Request, partnerID int) error {
	return s.saveFollowed(w, r, without(s.followed(r), partnerID))
}

func (s *Store) followed(r *http.Request) []Followed {
	raw, err := s.cookies.Get(r, followCookieName)
	if err != nil {
		return nil
	}
	encoded, _ := raw.Values[followedKey].(string)
	if encoded == "" {
		return nil
	}

	var list []Followed
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return nil
	}
	return list
}

func (s *Store) saveFollowed(w http.ResponseWriter, r *http.Request, list []Followed) error {
	raw, _ := s.cookies.Get(r, followCookieName)
	opts := s.options(true)
	if len(list) == 0 {
		delete(raw.Values, followedKey)
		opts.MaxAge = -1
	} else {
		encoded, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("failed to encode follow state: %w", err)
		}
		raw.Values[followedKey] = string(encoded)
	}
	raw.Options = opts

	if err := raw.Save(r, w); err != nil {
		return fmt.Errorf("failed to save follow state: %w", err)
	}
	return nil
}

func without(list []Followed, partnerID int) []Followed {
	kept := make([]Followed, 0, len(list))
	for _, f := range list {
		if f.PartnerID != partnerID {
			kept = append(kept, f)
		}
	}
	return kept
}
