package services

import (
	"context"

	"nikofree-web/internal/models"

	"github.com/sirupsen/logrus"
)

// FollowAction is a user interaction with the follow button
type FollowAction string

const (
	ActionFollow     FollowAction = "follow"
	ActionUnfollow   FollowAction = "unfollow"
	ActionToggleMenu FollowAction = "follow-menu"
)

// FollowState is what the follow button of a partner profile shows.
// It is display state only; nothing is persisted on the backend.
type FollowState struct {
	Following bool
	MenuOpen  bool
	Followers int
}

// NewFollowState starts from the partner's published follower count
func NewFollowState(followers int) FollowState {
	if followers < 0 {
		followers = 0
	}
	return FollowState{Followers: followers}
}

// Follow starts following. It is a no-op while already following.
func (s *FollowState) Follow() bool {
	if s.Following {
		return false
	}
	s.Following = true
	s.MenuOpen = false
	s.Followers++
	return true
}

// ToggleMenu opens or closes the unfollow menu. Only valid while following.
func (s *FollowState) ToggleMenu() bool {
	if !s.Following {
		return false
	}
	s.MenuOpen = !s.MenuOpen
	return true
}

// Unfollow stops following. It is a no-op while not following.
func (s *FollowState) Unfollow() bool {
	if !s.Following {
		return false
	}
	s.Following = false
	s.MenuOpen = false
	if s.Followers > 0 {
		s.Followers--
	}
	return true
}

// Apply performs action and reports whether the state changed
func (s *FollowState) Apply(action FollowAction) bool {
	switch action {
	case ActionFollow:
		return s.Follow()
	case ActionUnfollow:
		return s.Unfollow()
	case ActionToggleMenu:
		return s.ToggleMenu()
	default:
		return false
	}
}

// Remembered restores the state of a partner the visitor follows
func Remembered(followers int, menuOpen bool) FollowState {
	if followers < 0 {
		followers = 0
	}
	return FollowState{Following: true, MenuOpen: menuOpen, Followers: followers}
}

// FollowNotifier is told about follow changes so they can be made durable.
// Implementations must not block the response for long.
type FollowNotifier interface {
	Followed(ctx context.Context, sess *models.Session, partnerID int) error
	Unfollowed(ctx context.Context, sess *models.Session, partnerID int) error
}

// NoopFollowNotifier records nothing. The backend exposes no follow endpoint.
type NoopFollowNotifier struct {
	Logger *logrus.Logger
}

func (n NoopFollowNotifier) Followed(ctx context.Context, sess *models.Session, partnerID int) error {
	n.log("followed", partnerID)
	return nil
}

func (n NoopFollowNotifier) Unfollowed(ctx context.Context, sess *models.Session, partnerID int) error {
	n.log("unfollowed", partnerID)
	return nil
}

func (n NoopFollowNotifier) log(action string, partnerID int) {
	if n.Logger == nil {
		return
	}
	n.Logger.WithFields(logrus.Fields{
		"action":     action,
		"partner_id": partnerID,
	}).Debug("follow change not persisted")
}
