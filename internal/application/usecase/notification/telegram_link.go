package notification

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

const (
	linkCodeLength = 4 // bytes of entropy, rendered as 8 hex chars
	linkCodeTTL    = 10 * time.Minute
)

type linkCode struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// LinkCodeStore issues short-lived one-time codes binding a telegram chat to
// a user account. Codes live in memory only; a lost code is simply reissued.
type LinkCodeStore struct {
	mu    sync.Mutex
	codes map[string]linkCode
}

// NewLinkCodeStore creates a new LinkCodeStore instance.
func NewLinkCodeStore() *LinkCodeStore {
	return &LinkCodeStore{
		codes: make(map[string]linkCode),
	}
}

// Issue creates a new code for the user, invalidating any previous one.
func (s *LinkCodeStore) Issue(userID uuid.UUID) (string, error) {
	buf := make([]byte, linkCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate link code: %w", err)
	}
	code := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	for existing, entry := range s.codes {
		if entry.userID == userID || time.Now().After(entry.expiresAt) {
			delete(s.codes, existing)
		}
	}
	s.codes[code] = linkCode{
		userID:    userID,
		expiresAt: time.Now().Add(linkCodeTTL),
	}
	return code, nil
}

// Consume resolves a code to its user and removes it. Returns false for
// unknown or expired codes.
func (s *LinkCodeStore) Consume(code string) (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[code]
	if !ok {
		return uuid.Nil, false
	}
	delete(s.codes, code)
	if time.Now().After(entry.expiresAt) {
		return uuid.Nil, false
	}
	return entry.userID, true
}

// IssueLinkCodeInput represents the input for issuing a telegram link code.
type IssueLinkCodeInput struct {
	UserID uuid.UUID
}

// IssueLinkCodeOutput represents the issued link code.
type IssueLinkCodeOutput struct {
	Code      string
	ExpiresIn time.Duration
}

// IssueLinkCodeUseCase issues a code the user sends to the bot as
// "/link <code>" to connect their telegram chat.
type IssueLinkCodeUseCase struct {
	store *LinkCodeStore
}

// NewIssueLinkCodeUseCase creates a new IssueLinkCodeUseCase instance.
func NewIssueLinkCodeUseCase(store *LinkCodeStore) *IssueLinkCodeUseCase {
	return &IssueLinkCodeUseCase{
		store: store,
	}
}

// Execute issues the link code.
func (uc *IssueLinkCodeUseCase) Execute(_ context.Context, input IssueLinkCodeInput) (*IssueLinkCodeOutput, error) {
	code, err := uc.store.Issue(input.UserID)
	if err != nil {
		return nil, err
	}
	return &IssueLinkCodeOutput{Code: code, ExpiresIn: linkCodeTTL}, nil
}

// CompleteLinkInput represents the input for completing a telegram link.
type CompleteLinkInput struct {
	Code   string
	ChatID string
}

// CompleteLinkOutput represents the output of completing a telegram link.
type CompleteLinkOutput struct {
	User *entity.User
}

// CompleteLinkUseCase redeems a link code on behalf of the bot and stores
// the chat ID on the user.
type CompleteLinkUseCase struct {
	store     *LinkCodeStore
	userRepo  adapter.UserRepository
	prefsRepo adapter.NotificationPreferencesRepository
}

// NewCompleteLinkUseCase creates a new CompleteLinkUseCase instance.
func NewCompleteLinkUseCase(store *LinkCodeStore, userRepo adapter.UserRepository, prefsRepo adapter.NotificationPreferencesRepository) *CompleteLinkUseCase {
	return &CompleteLinkUseCase{
		store:     store,
		userRepo:  userRepo,
		prefsRepo: prefsRepo,
	}
}

// Execute completes the link.
func (uc *CompleteLinkUseCase) Execute(ctx context.Context, input CompleteLinkInput) (*CompleteLinkOutput, error) {
	userID, ok := uc.store.Consume(input.Code)
	if !ok {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeInvalidLinkCode,
			"invalid or expired link code",
			domainerror.ErrInvalidLinkCode,
		)
	}

	existing, err := uc.userRepo.FindByTelegramChatID(ctx, input.ChatID)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check chat link: %w", err)
	}
	if existing != nil && existing.ID != userID {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeTelegramLinkTaken,
			"this telegram account is already linked to another user",
			domainerror.ErrTelegramLinkTaken,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	user.TelegramChatID = input.ChatID
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store chat link: %w", err)
	}

	// Linking implies the user wants the channel, so flip the master switch.
	prefs, err := uc.prefsRepo.FindByUserID(ctx, userID)
	if err == nil && prefs != nil && !prefs.TelegramEnabled {
		prefs.TelegramEnabled = true
		prefs.UpdatedAt = time.Now().UTC()
		if err := uc.prefsRepo.Update(ctx, prefs); err != nil {
			return nil, fmt.Errorf("failed to enable telegram channel: %w", err)
		}
	}

	return &CompleteLinkOutput{User: user}, nil
}
