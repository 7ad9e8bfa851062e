package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/parlolabs/parlo/ent"
	entprofile "github.com/parlolabs/parlo/ent/profile"
	"github.com/parlolabs/parlo/internal/profile"
)

// ProfileVersion is the document version written by this build. Older
// documents are migrated on load; newer ones are refused.
const ProfileVersion = 2

var (
	// ErrNoProfile is returned when an account has no stored profile yet.
	ErrNoProfile = errors.New("store: no profile for account")

	// ErrCorruptProfile is returned when a stored document cannot be decoded.
	// Callers typically fall back to a fresh default profile.
	ErrCorruptProfile = errors.New("store: corrupt profile document")
)

// ProfileRepo loads and saves profile documents per account.
type ProfileRepo interface {
	Load(ctx context.Context, username string) (*profile.Profile, error)
	Save(ctx context.Context, username string, p *profile.Profile) error

	// Delete removes the account's document; the account itself survives.
	Delete(ctx context.Context, username string) error
}

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context, username string) (*profile.Profile, error) {
	row, err := r.client.Profile.Query().
		Where(entprofile.Username(normalizeUsername(username))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	if row.Version > ProfileVersion {
		return nil, fmt.Errorf("profile version %d is newer than this build supports (%d)", row.Version, ProfileVersion)
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(row.Data), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptProfile, err)
	}
	migrateProfile(&p, row.Version)
	return &p, nil
}

func (r *profileRepo) Save(ctx context.Context, username string, p *profile.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	username = normalizeUsername(username)

	existing, err := r.client.Profile.Query().
		Where(entprofile.Username(username)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.Profile.Create().
			SetUsername(username).
			SetVersion(ProfileVersion).
			SetData(string(data)).
			Save(ctx)
	case err != nil:
		return fmt.Errorf("query profile: %w", err)
	default:
		_, err = existing.Update().
			SetVersion(ProfileVersion).
			SetData(string(data)).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, username string) error {
	_, err := r.client.Profile.Delete().
		Where(entprofile.Username(normalizeUsername(username))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// migrateProfile brings an older document up to the current shape. Version 1
// predates the persisted regeneration anchor and the GCD wallet fields, which
// json already zero-fills; it only needs the seeded collections backfilled.
func migrateProfile(p *profile.Profile, version int) {
	if version >= ProfileVersion {
		return
	}
	now := time.Now()
	if len(p.Achievements) == 0 {
		fresh := profile.New(now)
		p.Achievements = fresh.Achievements
	}
	if p.CurrentOutfit == "" {
		p.CurrentOutfit = "default"
	}
	if len(p.UnlockedOutfits) == 0 {
		p.UnlockedOutfits = []string{"default"}
	}
}
