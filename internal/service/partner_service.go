package service

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/streakmate/internal/error_values"
	"github.com/limbo/streakmate/internal/repository"
	"github.com/limbo/streakmate/pkg/entity"
	"github.com/limbo/streakmate/pkg/localdate"
)

const (
	InviteCodeLength = 8
	InviteTTL        = 7 * 24 * time.Hour

	// no 0/O and 1/I to keep codes easy to type
	inviteAlphabet      = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	inviteCreateRetries = 5
)

type PartnerRepos struct {
	Users        repository.UsersRepositoryI
	Habits       repository.HabitsRepositoryI
	Completions  repository.CompletionsRepositoryI
	Partnerships repository.PartnershipsRepositoryI
	Invites      repository.InvitesRepositoryI
}

type PartnerService struct {
	users        repository.UsersRepositoryI
	habits       repository.HabitsRepositoryI
	completions  repository.CompletionsRepositoryI
	partnerships repository.PartnershipsRepositoryI
	invites      repository.InvitesRepositoryI
	now          func() time.Time
	newCode      func() (string, error)
}

func NewPartnerService(repos PartnerRepos) *PartnerService {
	if repos.Users == nil || repos.Habits == nil || repos.Completions == nil ||
		repos.Partnerships == nil || repos.Invites == nil {
		log.Fatal("on partner service provided nil repos")
	}
	return &PartnerService{
		users:        repos.Users,
		habits:       repos.Habits,
		completions:  repos.Completions,
		partnerships: repos.Partnerships,
		invites:      repos.Invites,
		now:          time.Now,
		newCode:      GenerateInviteCode,
	}
}

func (ps *PartnerService) WithClock(now func() time.Time) *PartnerService {
	ps.now = now
	return ps
}

// WithCodeGenerator replaces the random invite code source.
func (ps *PartnerService) WithCodeGenerator(gen func() (string, error)) *PartnerService {
	ps.newCode = gen
	return ps
}

// GenerateInviteCode returns a random code of InviteCodeLength characters.
func GenerateInviteCode() (string, error) {
	code := make([]byte, InviteCodeLength)
	alphabetLen := big.NewInt(int64(len(inviteAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = inviteAlphabet[n.Int64()]
	}
	return string(code), nil
}

func (ps *PartnerService) CreateInvite(ctx context.Context, uid uuid.UUID) (*entity.Invite, error) {
	if err := ps.ensureSingle(ctx, uid); err != nil {
		return nil, err
	}
	invite := entity.Invite{
		InviterID: uid,
		ExpiresAt: ps.now().Add(InviteTTL),
	}
	for range inviteCreateRetries {
		code, err := ps.newCode()
		if err != nil {
			return nil, errors.New("generating invite code error: " + err.Error())
		}
		invite.Code = code
		err = ps.invites.Create(ctx, &invite)
		switch {
		case err == nil:
			return &invite, nil
		case errors.Is(err, repository.ErrInviteCodeTaken):
			continue
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		default:
			return nil, errors.New("invites repository error: " + err.Error())
		}
	}
	return nil, errors.New("couldn't generate unique invite code")
}

func (ps *PartnerService) ListInvites(ctx context.Context, uid uuid.UUID) ([]entity.Invite, error) {
	invites, err := ps.invites.ListPendingByInviter(ctx, uid)
	if err != nil {
		return nil, errors.New("invites repository error: " + err.Error())
	}
	return invites, nil
}

func (ps *PartnerService) RevokeInvite(ctx context.Context, uid uuid.UUID, code string) error {
	err := ps.invites.Revoke(ctx, code, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInviteNotFound) {
			return err
		}
		return errors.New("invites repository error: " + err.Error())
	}
	return nil
}

func (ps *PartnerService) AcceptInvite(ctx context.Context, uid uuid.UUID, code string) (*entity.Partner, error) {
	invite, err := ps.invites.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInviteNotFound) {
			return nil, err
		}
		return nil, errors.New("invites repository error: " + err.Error())
	}
	if invite.InviterID == uid {
		return nil, errorvalues.ErrOwnInvite
	}
	if !invite.Usable(ps.now()) {
		return nil, errorvalues.ErrInviteNotFound
	}
	if err = ps.ensureSingle(ctx, uid); err != nil {
		return nil, err
	}
	if err = ps.ensureSingle(ctx, invite.InviterID); err != nil {
		return nil, err
	}
	// a concurrent accept can still pair either side; the members table
	// rejects it with ErrAlreadyPartnered
	p, err := ps.partnerships.CreateFromInvite(ctx, code, uid, invite.InviterID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInviteNotFound),
			errors.Is(err, errorvalues.ErrAlreadyPartnered),
			errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("partnerships repository error: " + err.Error())
	}
	return ps.partnerProfile(ctx, p, uid)
}

func (ps *PartnerService) GetPartner(ctx context.Context, uid uuid.UUID) (*entity.Partner, error) {
	p, err := ps.partnership(ctx, uid)
	if err != nil {
		return nil, err
	}
	return ps.partnerProfile(ctx, p, uid)
}

func (ps *PartnerService) Dissolve(ctx context.Context, uid uuid.UUID) error {
	p, err := ps.partnership(ctx, uid)
	if err != nil {
		return err
	}
	err = ps.partnerships.Delete(ctx, p.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPartnershipNotFound) {
			return errorvalues.ErrNoPartner
		}
		return errors.New("partnerships repository error: " + err.Error())
	}
	return nil
}

// GetPartnerProgress shows the partner's habits on localDate, which is the
// caller's local date.
func (ps *PartnerService) GetPartnerProgress(ctx context.Context, uid uuid.UUID, localDate string) (*entity.PartnerProgress, error) {
	if !localdate.IsValid(localDate) {
		return nil, errorvalues.ErrInvalidDate
	}
	partner, err := ps.GetPartner(ctx, uid)
	if err != nil {
		return nil, err
	}
	habits, err := ps.habits.ListAllByUserID(ctx, partner.UserID)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	doneIDs, err := ps.completions.CompletedHabitIDs(ctx, partner.UserID, localDate)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	done := make(map[uuid.UUID]struct{}, len(doneIDs))
	for _, id := range doneIDs {
		done[id] = struct{}{}
	}
	progress := entity.PartnerProgress{
		Partner:   *partner,
		LocalDate: localDate,
		Habits:    make([]entity.PartnerHabitProgress, 0, len(habits)),
	}
	for _, h := range habits {
		s, err := habitStreak(ctx, ps.completions, h.ID, localDate)
		if err != nil {
			return nil, err
		}
		_, completed := done[h.ID]
		progress.Habits = append(progress.Habits, entity.PartnerHabitProgress{
			HabitID:        h.ID,
			Title:          h.Title,
			CompletedToday: completed,
			CurrentStreak:  s.CurrentStreak,
			BestStreak:     s.BestStreak,
		})
	}
	return &progress, nil
}

func (ps *PartnerService) partnership(ctx context.Context, uid uuid.UUID) (*entity.Partnership, error) {
	p, err := ps.partnerships.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPartnershipNotFound) {
			return nil, errorvalues.ErrNoPartner
		}
		return nil, errors.New("partnerships repository error: " + err.Error())
	}
	return p, nil
}

func (ps *PartnerService) ensureSingle(ctx context.Context, uid uuid.UUID) error {
	_, err := ps.partnership(ctx, uid)
	switch {
	case err == nil:
		return errorvalues.ErrAlreadyPartnered
	case errors.Is(err, errorvalues.ErrNoPartner):
		return nil
	default:
		return err
	}
}

func (ps *PartnerService) partnerProfile(ctx context.Context, p *entity.Partnership, uid uuid.UUID) (*entity.Partner, error) {
	user, err := ps.users.FindByID(ctx, p.PartnerOf(uid))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrNoPartner
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return &entity.Partner{
		UserID:      user.ID,
		Name:        user.Name,
		PairedSince: p.CreatedAt,
	}, nil
}
