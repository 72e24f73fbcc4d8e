package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sanketsmane/portfolio-api/internal/model"
	"github.com/sanketsmane/portfolio-api/internal/repository"
	"github.com/sanketsmane/portfolio-api/internal/storage"
)

var (
	ErrNoActiveResume    = errors.New("no active resume found")
	ErrResumeFileMissing = errors.New("resume file not found")
	ErrResumeActive      = errors.New("cannot delete active resume")
)

// ResumeUpload carries the optional metadata accepted alongside an upload.
type ResumeUpload struct {
	Description string
	Version     string
	Tags        []string
}

// ResumeService owns résumé file records and the at-most-one-active
// invariant. Activation and upload swap the active record inside a single
// database transaction.
type ResumeService struct {
	resumeRepository repository.ResumeRepository
	storage          storage.Storage
}

func NewResumeService(resumeRepository repository.ResumeRepository, storage storage.Storage) *ResumeService {
	return &ResumeService{
		resumeRepository: resumeRepository,
		storage:          storage,
	}
}

// Upload stores the file, deactivates every existing record and inserts the
// new record as active.
func (s *ResumeService) Upload(file io.Reader, originalName, mimeType string, size int64, meta ResumeUpload) (*model.Resume, error) {
	filename := fmt.Sprintf("resume-%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], filepath.Ext(originalName))

	err := s.storage.Save(filename, file)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	version := meta.Version
	if version == "" {
		version = "1.0"
	}
	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	resume := &model.Resume{
		ID:           uuid.New().String(),
		Filename:     filename,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         size,
		StoragePath:  filename,
		IsActive:     true,
		Version:      version,
		Description:  meta.Description,
		Tags:         tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.resumeRepository.InsertActive(resume)
	if err != nil {
		// Database insert failed, clean up the stored file
		delErr := s.storage.Delete(filename)
		if delErr != nil {
			slog.Error("failed to delete file from storage during cleanup", "error", delErr, "filename", filename)
		}
		return nil, fmt.Errorf("failed to create resume record: %w", err)
	}

	slog.Info("resume uploaded", "filename", filename, "original_name", originalName, "size", size)
	return resume, nil
}

// Active returns the active résumé record, verifying the backing file still
// exists in storage.
func (s *ResumeService) Active() (*model.Resume, error) {
	resume, err := s.resumeRepository.Active()
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, ErrNoActiveResume
		}
		return nil, fmt.Errorf("failed to get active resume: %w", err)
	}

	if !s.storage.Exists(resume.StoragePath) {
		return nil, ErrResumeFileMissing
	}

	return resume, nil
}

// Download increments the download counter and opens the active résumé file
// for streaming. The returned record reflects the incremented count.
func (s *ResumeService) Download() (*model.Resume, io.ReadCloser, error) {
	resume, err := s.Active()
	if err != nil {
		return nil, nil, err
	}

	err = s.resumeRepository.IncrementDownloadCount(resume.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record download: %w", err)
	}
	resume.DownloadCount++

	file, err := s.storage.Open(resume.StoragePath)
	if err != nil {
		return nil, nil, ErrResumeFileMissing
	}

	return resume, file, nil
}

// Activate makes the given record the single active résumé.
func (s *ResumeService) Activate(id string) (*model.Resume, error) {
	err := s.resumeRepository.Activate(id)
	if err != nil {
		return nil, err
	}

	slog.Info("resume activated", "resume_id", id)
	return s.resumeRepository.ByID(id)
}

// Delete removes an inactive résumé record and its backing file. Deleting the
// active record is a conflict.
func (s *ResumeService) Delete(id string) error {
	resume, err := s.resumeRepository.ByID(id)
	if err != nil {
		return err
	}

	if resume.IsActive {
		return ErrResumeActive
	}

	// Tolerate a file already absent from storage
	err = s.storage.Delete(resume.StoragePath)
	if err != nil {
		slog.Warn("failed to delete resume file from storage", "error", err, "filename", resume.Filename)
	}

	err = s.resumeRepository.Delete(id)
	if err != nil {
		return err
	}

	slog.Info("resume deleted", "resume_id", id, "filename", resume.Filename)
	return nil
}

// ResumePage is one page of the résumé listing.
type ResumePage struct {
	Items []*model.Resume
	Page  int
	Limit int
	Total int
	Pages int
}

// List returns résumé records newest-first.
func (s *ResumeService) List(page, limit int) (*ResumePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, err := s.resumeRepository.List(limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	if items == nil {
		items = []*model.Resume{}
	}

	total, err := s.resumeRepository.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count resumes: %w", err)
	}

	return &ResumePage{
		Items: items,
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}, nil
}
