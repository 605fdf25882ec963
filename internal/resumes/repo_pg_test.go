package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateReturnsGeneratedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	uploaded := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO resumes").
		WithArgs(int64(7), "a1b2/resume_1.pdf", "resume.pdf", int64(2048), "application/pdf", StatusUploaded).
		WillReturnRows(sqlmock.NewRows([]string{"id", "upload_date"}).AddRow(int64(42), uploaded))

	resume, err := repo.Create(context.Background(), Resume{
		UserID:           7,
		Filename:         "a1b2/resume_1.pdf",
		OriginalFilename: "resume.pdf",
		FileSize:         2048,
		FileType:         "application/pdf",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resume.ID != 42 {
		t.Fatalf("ID = %d, want 42", resume.ID)
	}
	if resume.Status != StatusUploaded {
		t.Fatalf("Status = %q, want %q", resume.Status, StatusUploaded)
	}
	if !resume.UploadDate.Equal(uploaded) {
		t.Fatalf("UploadDate = %v, want %v", resume.UploadDate, uploaded)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSetStatusMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE resumes SET status").
		WithArgs(StatusAnalyzed, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetStatus(context.Background(), 99, StatusAnalyzed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetStatus err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
