package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"cvhub/internal/models"
	"cvhub/internal/repositories"
	"cvhub/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// File is an uploaded payload.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (f File) mediaType() string {
	mt, _, err := mime.ParseMediaType(f.ContentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(f.ContentType))
	}
	return mt
}

var pictureExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// Share link issuance runs under a lock that expires after ShareLinkLockTTL.
// Upload and signing must finish within IssueTimeout, which stays below it.
const (
	ShareLinkLockTTL    = 30 * time.Second
	DefaultIssueTimeout = 20 * time.Second
)

// ExportConfig holds the link lifetimes.
type ExportConfig struct {
	ShareLinkTTL      time.Duration
	ProfilePictureTTL time.Duration
	// IssueTimeout bounds the storage calls made while the issuance lock is held.
	IssueTimeout time.Duration
}

// ExportService uploads CV PDFs and profile pictures and issues signed links to them.
type ExportService struct {
	guard     *OwnershipGuard
	shareRepo repositories.ShareLinkRepository
	userRepo  repositories.UserRepository
	store     storage.ObjectStore
	locker    Locker
	cfg       ExportConfig
	events    EventPublisher
}

// NewExportService creates a new ExportService. store may be nil when storage is not configured.
func NewExportService(
	guard *OwnershipGuard,
	shareRepo repositories.ShareLinkRepository,
	userRepo repositories.UserRepository,
	store storage.ObjectStore,
	locker Locker,
	cfg ExportConfig,
	events EventPublisher,
) *ExportService {
	if locker == nil {
		locker = NewLocalLocker()
	}
	if cfg.ShareLinkTTL < time.Minute {
		cfg.ShareLinkTTL = time.Minute
	}
	if cfg.IssueTimeout <= 0 || cfg.IssueTimeout >= ShareLinkLockTTL {
		cfg.IssueTimeout = DefaultIssueTimeout
	}
	return &ExportService{
		guard:     guard,
		shareRepo: shareRepo,
		userRepo:  userRepo,
		store:     store,
		locker:    locker,
		cfg:       cfg,
		events:    events,
	}
}

// CreateShareLink returns the active link for the CV, or uploads file and issues a new one.
// Issuance is serialized per (CV, user) so concurrent calls cannot create two links.
func (s *ExportService) CreateShareLink(ctx context.Context, cvID, userID string, file File) (*models.ShareLink, error) {
	if _, err := s.guard.VerifyCVOwnership(cvID, userID); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, fmt.Sprintf("share-link:%s:%s", cvID, userID))
	if err != nil {
		return nil, newError(ErrUpstreamUnavailable, "Could not acquire share link lock", err)
	}
	defer unlock()

	existing, err := s.shareRepo.FindActive(cvID, userID, time.Now().UTC())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, err
	}

	if file.mediaType() != "application/pdf" {
		return nil, newError(ErrInvalidInput, "Only PDF files are supported", nil)
	}
	if len(file.Data) == 0 {
		return nil, newError(ErrInvalidInput, "Uploaded file is empty", nil)
	}
	if s.store == nil {
		return nil, newError(ErrStorageMisconfigured, "Object storage is not configured", nil)
	}

	issueCtx, cancel := context.WithTimeout(ctx, s.cfg.IssueTimeout)
	defer cancel()

	key := fmt.Sprintf("cvs/user-%s/cv-%s-%s.pdf", userID, cvID, uuid.NewString())
	metadata := map[string]string{
		"cv_id":    cvID,
		"user_id":  userID,
		"filename": file.Filename,
	}
	if err := s.store.Upload(issueCtx, key, file.Data, "application/pdf", metadata); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload CV PDF")
		return nil, newError(ErrUpstreamFailure, "Failed to upload CV", err)
	}

	url, expiresAt, err := s.store.Sign(issueCtx, key, s.cfg.ShareLinkTTL)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to sign CV PDF url")
		return nil, newError(ErrUpstreamFailure, "Failed to generate share link", err)
	}

	link := &models.ShareLink{CVID: cvID, UserID: userID, URL: url, ExpiresAt: expiresAt.UTC()}
	if err := s.shareRepo.Create(link); err != nil {
		return nil, err
	}

	publish(s.events, EventShareLinkCreated, map[string]interface{}{
		"share_link_id": link.ID,
		"cv_id":         cvID,
		"user_id":       userID,
		"expires_at":    link.ExpiresAt,
	})
	return link, nil
}

// UploadProfilePicture stores a JPEG or PNG under a stable per-user key and
// saves a signed URL to it on the user.
func (s *ExportService) UploadProfilePicture(ctx context.Context, user *models.User, file File) (*models.User, error) {
	ext, ok := pictureExtensions[file.mediaType()]
	if !ok {
		return nil, newError(ErrInvalidInput, "Only JPEG or PNG images are supported", nil)
	}
	if len(file.Data) == 0 {
		return nil, newError(ErrInvalidInput, "Uploaded file is empty", nil)
	}
	if s.store == nil {
		return nil, newError(ErrStorageMisconfigured, "Object storage is not configured", nil)
	}

	key := fmt.Sprintf("profile-pictures/user-%s.%s", user.ID, ext)
	metadata := map[string]string{
		"user_id":  user.ID,
		"filename": file.Filename,
	}
	if err := s.store.Upload(ctx, key, file.Data, file.mediaType(), metadata); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload profile picture")
		return nil, newError(ErrUpstreamFailure, "Failed to upload profile picture", err)
	}

	url, _, err := s.store.Sign(ctx, key, s.cfg.ProfilePictureTTL)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to sign profile picture url")
		return nil, newError(ErrUpstreamFailure, "Failed to generate profile picture link", err)
	}

	user.ProfilePictureURL = &url
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
