package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/isdelr/paperdeck-be/internal/auth"
	"github.com/isdelr/paperdeck-be/internal/models"
)

// ---- fakes ----

type fakeUserService struct {
	createOut models.User
	createErr error

	authOut models.User
	authErr error

	getOut models.User
	getErr error
}

func (f *fakeUserService) GetUserByID(id string) (models.User, error) { return f.getOut, f.getErr }
func (f *fakeUserService) CreateUser(email, password, name string) (models.User, error) {
	return f.createOut, f.createErr
}
func (f *fakeUserService) AuthenticateUser(email, password string) (models.User, error) {
	return f.authOut, f.authErr
}
func (f *fakeUserService) DeleteUser(id string) error { return nil }

func (f *fakeUserService) ExpirePremium(t time.Time) (int64, error) { return 0, nil }

type fakePaperService struct {
	canUploadOut bool

	uploadOut models.Paper
	uploadErr error

	listOut []models.PaperSummary
	listErr error

	getOut models.Paper
	getErr error

	deleteErr error

	countOut int
}

func (f *fakePaperService) CanUpload(user models.User) (bool, error) { return f.canUploadOut, nil }
func (f *fakePaperService) UploadPaper(ctx context.Context, userID, filename string, data []byte) (models.Paper, error) {
	return f.uploadOut, f.uploadErr
}
func (f *fakePaperService) GetPapersForUser(userID string) ([]models.PaperSummary, error) {
	return f.listOut, f.listErr
}
func (f *fakePaperService) GetPaperByID(userID, paperID string) (models.Paper, error) {
	return f.getOut, f.getErr
}
func (f *fakePaperService) DeletePaper(userID, paperID string) error { return f.deleteErr }
func (f *fakePaperService) CountPapersForUser(userID string) (int, error) {
	return f.countOut, nil
}

type fakeEventService struct {
	events []string
}

func (f *fakeEventService) CreateEvent(eventType, level, message string, userID *string) error {
	f.events = append(f.events, eventType)
	return nil
}
func (f *fakeEventService) GetRecentEventsForUser(userID string, limit int) ([]models.Event, error) {
	return nil, nil
}

type fakeCheckout struct {
	url string
	err error
}

func (f *fakeCheckout) CreateCheckoutSession(ctx context.Context, userID, email string) (string, error) {
	return f.url, f.err
}

type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) GenerateToken(user models.User) (string, error) { return f.token, f.err }

// withClaims attaches authenticated-user claims to a request, the way the
// auth middleware does for protected routes.
func withClaims(r *http.Request, userID string) *http.Request {
	claims := &auth.Claims{UserID: userID}
	return r.WithContext(context.WithValue(r.Context(), auth.UserClaimsKey, claims))
}
