package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/playmate/venue-booking/internal/model"
	"github.com/playmate/venue-booking/internal/repository"
)

// MembershipService manages the roster of a game: join requests,
// leaving, and the host's approve/reject decisions.
type MembershipService struct {
	db      *sql.DB
	games   *repository.GameRepo
	players *repository.GamePlayerRepo
}

func NewMembershipService(db *sql.DB, games *repository.GameRepo, players *repository.GamePlayerRepo) *MembershipService {
	if db == nil || games == nil || players == nil {
		panic("nil dependency passed to NewMembershipService")
	}
	return &MembershipService{db: db, games: games, players: players}
}

// Join files a pending membership request for userID on gameID.  The
// game must exist; a second join by the same user is a conflict.
func (s *MembershipService) Join(ctx context.Context, gameID, userID uint64) (*model.GamePlayer, error) {
	if gameID == 0 || userID == 0 {
		return nil, fmt.Errorf("%w: game id and user id are required", ErrValidation)
	}
	if _, err := s.games.Get(ctx, s.db, gameID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: game not found", ErrNotFound)
		}
		return nil, err
	}
	gp, err := s.players.Create(ctx, gameID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyJoined
		}
		return nil, err
	}
	return gp, nil
}

// Leave removes userID's membership row for gameID regardless of its
// current status.  No row means nothing to leave.
func (s *MembershipService) Leave(ctx context.Context, gameID, userID uint64) error {
	if gameID == 0 || userID == 0 {
		return fmt.Errorf("%w: game id and user id are required", ErrValidation)
	}
	if err := s.players.DeleteByGameAndUser(ctx, gameID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: membership not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// UpdateStatus moves the membership identified by gamePlayerID to
// status.  Only the host of the membership's game may decide, and the
// status must be one of the known roster states.
func (s *MembershipService) UpdateStatus(ctx context.Context, gamePlayerID, actingUserID uint64, status string) error {
	if gamePlayerID == 0 {
		return fmt.Errorf("%w: game player id is required", ErrValidation)
	}
	if !model.ValidPlayerStatus(status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	host, err := s.players.HostOf(ctx, gamePlayerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: membership not found", ErrNotFound)
		}
		return err
	}
	if host != actingUserID {
		return ErrForbidden
	}
	if err := s.players.UpdateStatus(ctx, gamePlayerID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: membership not found", ErrNotFound)
		}
		return err
	}
	return nil
}

// ListPlayers returns the full roster of gameID, every status included.
func (s *MembershipService) ListPlayers(ctx context.Context, gameID uint64) ([]model.GamePlayer, error) {
	if gameID == 0 {
		return nil, fmt.Errorf("%w: game id is required", ErrValidation)
	}
	return s.players.ListByGame(ctx, gameID)
}
