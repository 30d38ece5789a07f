package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
	"github.com/dmitrijs2005/wifikeeper/internal/logging"
)

// fakeClient implements api.Client for tests. Each method delegates to the
// corresponding func field, unset fields panic so tests fail loudly when an
// unexpected call happens.
type fakeClient struct {
	loginFunc    func(ctx context.Context, email, password string) (string, *models.User, error)
	registerFunc func(ctx context.Context, email, password string) (string, *models.User, error)
	createFunc   func(ctx context.Context, req models.CreateRequest) (*models.WiFiCredential, error)
	listFunc     func(ctx context.Context) ([]models.WiFiCredential, error)
	getFunc      func(ctx context.Context, id string) (*models.WiFiCredential, error)
	deleteFunc   func(ctx context.Context, id string) error
	listAllFunc  func(ctx context.Context) ([]models.AdminCredential, error)

	calls []string
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	f.calls = append(f.calls, "Login")
	return f.loginFunc(ctx, email, password)
}

func (f *fakeClient) Register(ctx context.Context, email, password string) (string, *models.User, error) {
	f.calls = append(f.calls, "Register")
	return f.registerFunc(ctx, email, password)
}

func (f *fakeClient) CreateCredential(ctx context.Context, req models.CreateRequest) (*models.WiFiCredential, error) {
	f.calls = append(f.calls, "CreateCredential")
	return f.createFunc(ctx, req)
}

func (f *fakeClient) ListCredentials(ctx context.Context) ([]models.WiFiCredential, error) {
	f.calls = append(f.calls, "ListCredentials")
	return f.listFunc(ctx)
}

func (f *fakeClient) GetCredential(ctx context.Context, id string) (*models.WiFiCredential, error) {
	f.calls = append(f.calls, "GetCredential")
	return f.getFunc(ctx, id)
}

func (f *fakeClient) DeleteCredential(ctx context.Context, id string) error {
	f.calls = append(f.calls, "DeleteCredential")
	return f.deleteFunc(ctx, id)
}

func (f *fakeClient) ListAllCredentials(ctx context.Context) ([]models.AdminCredential, error) {
	f.calls = append(f.calls, "ListAllCredentials")
	return f.listAllFunc(ctx)
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
