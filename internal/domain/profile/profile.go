package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SocialLinks holds the optional social media URLs of a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a work-history entry. Title, Company and From are always
// present once the entry exists.
type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

func (e Experience) EntryID() uuid.UUID { return e.ID }

// Education is a schooling entry. School, Degree, FieldOfStudy and From are
// always present once the entry exists.
type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

func (e Education) EntryID() uuid.UUID { return e.ID }

// OwnerInfo is the public projection of the owning identity, joined in on
// read paths.
type OwnerInfo struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Profile is the single profile document of an owner. Experience and
// education are kept newest-first.
type Profile struct {
	OwnerID        uuid.UUID    `json:"owner_id"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"github_username,omitempty"`
	Skills         []string     `json:"skills"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	UpdatedAt      time.Time    `json:"updated_at"`

	Owner *OwnerInfo `json:"owner,omitempty"`
}

type Repository interface {
	// GetByOwnerID returns apperror.ErrNotFound when the owner has no profile.
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Profile, error)

	// Upsert applies the patch to the owner's profile, creating it when
	// absent. The operation is a single atomic read-modify-write per owner.
	Upsert(ctx context.Context, ownerID uuid.UUID, patch Patch) (*Profile, error)

	List(ctx context.Context) ([]*Profile, error)

	// Delete removes the profile document. Absent profiles are not an error.
	Delete(ctx context.Context, ownerID uuid.UUID) error

	// SaveExperience and SaveEducation replace the sub-collection of an
	// existing profile and return the updated document. They fail with
	// apperror.ErrNotFound when the owner has no profile.
	SaveExperience(ctx context.Context, ownerID uuid.UUID, entries []Experience) (*Profile, error)
	SaveEducation(ctx context.Context, ownerID uuid.UUID, entries []Education) (*Profile, error)
}
