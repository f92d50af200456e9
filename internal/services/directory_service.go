package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"gorm.io/gorm"

	dto "task-time-tracker.com/task-time-tracker/internal/data_models"
	model "task-time-tracker.com/task-time-tracker/internal/models"
	repository "task-time-tracker.com/task-time-tracker/internal/repositories"
)

// DirectoryService maintains the BAS account set. Its operations never
// return an error: storage faults degrade to a result with the success (or
// valid) flag cleared, and callers branch on that flag.
type DirectoryService struct {
	accounts *repository.AccountRepository
}

func NewDirectoryService(accounts *repository.AccountRepository) *DirectoryService {
	return &DirectoryService{accounts: accounts}
}

// ImportAccounts resyncs the account set from a CSV feed with columns
// account_id, account_name, category, description. The header row is
// discarded, fields are trimmed, and rows with fewer than three fields are
// counted as skipped. Accounts missing from the feed are deactivated, not
// deleted. Inserted and updated rows are not distinguished in the count.
func (s *DirectoryService) ImportAccounts(ctx context.Context, source io.Reader) dto.ImportResult {
	if err := s.accounts.EnsureActiveFlag(ctx); err != nil {
		return importFailure(err)
	}

	reader := csv.NewReader(source)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return importFailure(err)
	}

	if len(records) > 0 {
		records = records[1:]
	}

	var incoming []model.BasAccount
	skipped := 0
	for _, row := range records {
		if len(row) < 3 {
			skipped++
			continue
		}

		account := model.BasAccount{
			ID:       strings.TrimSpace(row[0]),
			Name:     strings.TrimSpace(row[1]),
			Category: strings.TrimSpace(row[2]),
			IsActive: true,
		}
		if len(row) > 3 {
			account.Description = strings.TrimSpace(row[3])
		}
		incoming = append(incoming, account)
	}

	if err := s.accounts.Resync(ctx, incoming); err != nil {
		return importFailure(err)
	}

	activeCount, err := s.accounts.CountActive(ctx)
	if err != nil {
		return importFailure(err)
	}

	log.Printf("imported %d BAS accounts (%d skipped), %d active", len(incoming), skipped, activeCount)

	return dto.ImportResult{
		Success:       true,
		Message:       fmt.Sprintf("Successfully imported %d BAS accounts. %d accounts are now active.", len(incoming), activeCount),
		ImportedCount: len(incoming),
		SkippedCount:  skipped,
		ActiveCount:   activeCount,
	}
}

// ValidateAccount reports whether id names a currently active account. A
// missing or inactive id is a normal not-valid outcome, never an error.
func (s *DirectoryService) ValidateAccount(ctx context.Context, id string) dto.ValidationResult {
	account, err := s.accounts.FindActive(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ValidationResult{
				Valid:   false,
				Message: fmt.Sprintf("BAS account %s does not exist or is inactive", id),
			}
		}

		log.Printf("error validating BAS account %s: %v", id, err)
		return dto.ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("Error validating BAS account: %v", err),
		}
	}

	return dto.ValidationResult{Valid: true, Account: account}
}

func (s *DirectoryService) ListAccounts(ctx context.Context) ([]model.BasAccount, error) {
	return s.accounts.List(ctx)
}

func importFailure(err error) dto.ImportResult {
	log.Printf("error importing BAS accounts: %v", err)
	return dto.ImportResult{
		Success: false,
		Message: fmt.Sprintf("Error importing BAS accounts: %v", err),
	}
}
