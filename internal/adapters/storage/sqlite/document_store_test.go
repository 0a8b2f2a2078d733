package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
)

func seedUserWithDocument(t *testing.T, users *sqlite.UserStore, docs *sqlite.DocumentStore, userID int64, docID string) {
	t.Helper()

	ctx := context.Background()
	if err := users.SaveUser(ctx, &account.User{ID: userID, Email: "u@example.com"}); err != nil {
		t.Fatalf("SaveUser() error = %v", err)
	}
	if err := docs.SaveKYCDocument(ctx, userID, docID, "passport"); err != nil {
		t.Fatalf("SaveKYCDocument() error = %v", err)
	}
}

func TestDocumentStore_SaveLinksUser(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	users, docs := sqlite.NewUserStore(db), sqlite.NewDocumentStore(db)
	seedUserWithDocument(t, users, docs, 1, "doc-1")

	u, err := users.GetUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if u.KYCDocumentID != "doc-1" {
		t.Errorf("KYCDocumentID = %q, want doc-1", u.KYCDocumentID)
	}
}

func TestDocumentStore_DeleteUnlinksUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)
	users, docs := sqlite.NewUserStore(db), sqlite.NewDocumentStore(db)
	seedUserWithDocument(t, users, docs, 1, "doc-1")

	if err := docs.DeleteKYCDocument(ctx, 1, "doc-1"); err != nil {
		t.Fatalf("DeleteKYCDocument() error = %v", err)
	}

	u, err := users.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if u.HasKYCDocument() {
		t.Errorf("KYCDocumentID = %q after delete, want empty", u.KYCDocumentID)
	}

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kyc_documents").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("kyc_documents rows = %d, want 0", n)
	}
}

func TestDocumentStore_DeleteMissing(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	users, docs := sqlite.NewUserStore(db), sqlite.NewDocumentStore(db)
	seedUserWithDocument(t, users, docs, 1, "doc-1")

	tests := []struct {
		name   string
		userID int64
		docID  string
	}{
		{name: "unknown document", userID: 1, docID: "doc-2"},
		{name: "document of another user", userID: 2, docID: "doc-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := docs.DeleteKYCDocument(context.Background(), tt.userID, tt.docID)
			if !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("DeleteKYCDocument() error = %v, want ErrNotFound", err)
			}
		})
	}

	u, err := users.GetUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if u.KYCDocumentID != "doc-1" {
		t.Errorf("failed delete changed KYCDocumentID to %q", u.KYCDocumentID)
	}
}
