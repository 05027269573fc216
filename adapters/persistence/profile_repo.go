package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/gan0622/DevForFun/internal/domain/profile"
	"github.com/gan0622/DevForFun/pkg/apperror"
	"github.com/gan0622/DevForFun/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

var psqlProfile = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const profileColumns = `owner_id, company, website, location, bio, status, github_username, skills, social, experience, education, updated_at`

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var socialBytes, experienceBytes, educationBytes []byte

	err := row.Scan(
		&p.OwnerID,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Bio,
		&p.Status,
		&p.GithubUsername,
		&p.Skills,
		&socialBytes,
		&experienceBytes,
		&educationBytes,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewUnavailable("profile store", "failed to scan profile row", err)
	}

	r.unmarshalDocuments(p, socialBytes, experienceBytes, educationBytes)
	return p, nil
}

func (r *postgresProfileRepo) scanProfileWithOwner(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	owner := &profile.OwnerInfo{}
	var socialBytes, experienceBytes, educationBytes []byte

	err := row.Scan(
		&p.OwnerID,
		&p.Company,
		&p.Website,
		&p.Location,
		&p.Bio,
		&p.Status,
		&p.GithubUsername,
		&p.Skills,
		&socialBytes,
		&experienceBytes,
		&educationBytes,
		&p.UpdatedAt,
		&owner.Name,
		&owner.Avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewUnavailable("profile store", "failed to scan profile row", err)
	}

	p.Owner = owner
	r.unmarshalDocuments(p, socialBytes, experienceBytes, educationBytes)
	return p, nil
}

// unmarshalDocuments decodes the JSONB columns. A corrupt column is logged
// and replaced with its empty value rather than failing the read.
func (r *postgresProfileRepo) unmarshalDocuments(p *profile.Profile, socialBytes, experienceBytes, educationBytes []byte) {
	if err := json.Unmarshal(socialBytes, &p.Social); err != nil {
		r.logger.Warn("Failed to unmarshal social links", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Social = profile.SocialLinks{}
	}
	if err := json.Unmarshal(experienceBytes, &p.Experience); err != nil {
		r.logger.Warn("Failed to unmarshal experience", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Experience = []profile.Experience{}
	}
	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal education", zap.String("owner_id", p.OwnerID.String()), zap.Error(err))
		p.Education = []profile.Education{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []profile.Experience{}
	}
	if p.Education == nil {
		p.Education = []profile.Education{}
	}
}

func (r *postgresProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT p.owner_id, p.company, p.website, p.location, p.bio, p.status, p.github_username,
		       p.skills, p.social, p.experience, p.education, p.updated_at,
		       u.name, u.avatar
		FROM profiles p
		JOIN users u ON u.id = p.owner_id
		WHERE p.owner_id = $1
	`
	p, err := r.scanProfileWithOwner(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, err
	}
	return p, nil
}

// Upsert is a single INSERT .. ON CONFLICT statement so that two concurrent
// requests for the same owner can never both take the create branch. Nil
// patch fields keep the stored value; social keys are merged into the stored
// object.
func (r *postgresProfileRepo) Upsert(ctx context.Context, ownerID uuid.UUID, patch profile.Patch) (*profile.Profile, error) {
	socialBytes, err := json.Marshal(patch.Social)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal social patch", err)
	}

	query := `
		INSERT INTO profiles (owner_id, company, website, location, bio, status, github_username, skills, social)
		VALUES ($1,
		        COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''),
		        COALESCE($6, ''), COALESCE($7, ''),
		        COALESCE($8::text[], '{}'::text[]),
		        COALESCE($9::jsonb, '{}'::jsonb))
		ON CONFLICT (owner_id) DO UPDATE SET
			company = COALESCE($2, profiles.company),
			website = COALESCE($3, profiles.website),
			location = COALESCE($4, profiles.location),
			bio = COALESCE($5, profiles.bio),
			status = COALESCE($6, profiles.status),
			github_username = COALESCE($7, profiles.github_username),
			skills = COALESCE($8::text[], profiles.skills),
			social = profiles.social || COALESCE($9::jsonb, '{}'::jsonb),
			updated_at = NOW()
		RETURNING ` + profileColumns

	row := r.db.QueryRow(ctx, query,
		ownerID,
		patch.Company,
		patch.Website,
		patch.Location,
		patch.Bio,
		patch.Status,
		patch.GithubUsername,
		patch.Skills,
		socialBytes,
	)

	p, err := r.scanProfile(row)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			// RETURNING always yields a row; no rows means the statement failed.
			return nil, apperror.NewUnavailable("profile store", "upsert returned no row", nil)
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProfileRepo) List(ctx context.Context) ([]*profile.Profile, error) {
	builder := psqlProfile.Select(
		"p.owner_id", "p.company", "p.website", "p.location", "p.bio", "p.status", "p.github_username",
		"p.skills", "p.social", "p.experience", "p.education", "p.updated_at",
		"u.name", "u.avatar",
	).
		From("profiles p").
		Join("users u ON u.id = p.owner_id").
		OrderBy("p.updated_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list profiles query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewUnavailable("profile store", "failed to query profiles", err)
	}
	defer rows.Close()

	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := r.scanProfileWithOwner(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewUnavailable("profile store", "error iterating profile rows", err)
	}
	return profiles, nil
}

func (r *postgresProfileRepo) Delete(ctx context.Context, ownerID uuid.UUID) error {
	query := `DELETE FROM profiles WHERE owner_id = $1`
	if _, err := r.db.Exec(ctx, query, ownerID); err != nil {
		return apperror.NewUnavailable("profile store", "failed to delete profile", err)
	}
	// Zero rows affected means the profile was already gone, which is fine.
	return nil
}

func (r *postgresProfileRepo) SaveExperience(ctx context.Context, ownerID uuid.UUID, entries []profile.Experience) (*profile.Profile, error) {
	return r.saveSubRecords(ctx, ownerID, "experience", entries)
}

func (r *postgresProfileRepo) SaveEducation(ctx context.Context, ownerID uuid.UUID, entries []profile.Education) (*profile.Profile, error) {
	return r.saveSubRecords(ctx, ownerID, "education", entries)
}

func (r *postgresProfileRepo) saveSubRecords(ctx context.Context, ownerID uuid.UUID, column string, entries any) (*profile.Profile, error) {
	entriesBytes, err := json.Marshal(entries)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal "+column, err)
	}

	// column is one of the two fixed jsonb column names, never user input.
	query := `
		UPDATE profiles SET ` + column + ` = $2, updated_at = NOW()
		WHERE owner_id = $1
		RETURNING ` + profileColumns

	p, err := r.scanProfile(r.db.QueryRow(ctx, query, ownerID, entriesBytes))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, err
	}
	return p, nil
}
