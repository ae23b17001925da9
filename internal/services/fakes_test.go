package services

import (
	"context"
	"fmt"
	"time"

	"github.com/isdelr/paperdeck-be/internal/analysis"
	"github.com/isdelr/paperdeck-be/internal/models"
)

// ---- fakes ----

type fakeUserService struct {
	user    models.User
	userErr error

	expired    int64
	expiredErr error
}

func (f *fakeUserService) GetUserByID(id string) (models.User, error) {
	if f.userErr != nil {
		return models.User{}, f.userErr
	}
	return f.user, nil
}

func (f *fakeUserService) CreateUser(email, password, name string) (models.User, error) {
	return f.user, f.userErr
}

func (f *fakeUserService) AuthenticateUser(email, password string) (models.User, error) {
	return f.user, f.userErr
}

func (f *fakeUserService) DeleteUser(id string) error { return nil }

func (f *fakeUserService) ExpirePremium(now time.Time) (int64, error) {
	return f.expired, f.expiredErr
}

type recordedEvent struct {
	Type    string
	Level   string
	Message string
	UserID  *string
}

type fakeEventService struct {
	events []recordedEvent
}

func (f *fakeEventService) CreateEvent(eventType, level, message string, userID *string) error {
	f.events = append(f.events, recordedEvent{Type: eventType, Level: level, Message: message, UserID: userID})
	return nil
}

func (f *fakeEventService) GetRecentEventsForUser(userID string, limit int) ([]models.Event, error) {
	return nil, nil
}

type fakeExtractor struct {
	text string
}

func (f *fakeExtractor) Extract(data []byte) string { return f.text }

type fakeAnalyzer struct {
	err error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, text string, kind analysis.Kind) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("analysis of kind %s", kind), nil
}
