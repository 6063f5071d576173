// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/integration/persistence"
)

// registerJournalSteps registers steps that seed or inspect the cash-flow
// journal directly, bypassing the HTTP layer.
func registerJournalSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the journal contains an? (INCOME|EXPENSE) transaction "([^"]*)" of (\d+)$`, theJournalContainsATransaction)
	ctx.Step(`^a recurring (Daily|Weekly|Monthly|Yearly) template "([^"]*)" dated "([^"]*)" exists$`, aRecurringTemplateExists)
	ctx.Step(`^the journal should have (\d+) transactions?$`, theJournalShouldHaveTransactions)
	ctx.Step(`^the payroll ledger should have (\d+) entr(?:y|ies)$`, thePayrollLedgerShouldHaveEntries)
}

func theJournalContainsATransaction(ctx context.Context, transactionType, description string, amount int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	author, err := seededAdmin(ctx, tc)
	if err != nil {
		return err
	}

	mainCategory, subCategory := "Pendapatan Lain-lain", "Lainnya"
	if transactionType == string(entity.TransactionTypeExpense) {
		mainCategory, subCategory = "Biaya Operasional", "Lainnya"
	}

	txn := entity.NewTransaction(
		time.Now(),
		description,
		entity.TransactionType(transactionType),
		mainCategory,
		subCategory,
		decimal.NewFromInt(int64(amount)),
		"",
		author,
	)

	repo := persistence.NewTransactionRepository(tc.db.DbConn)
	return repo.Create(ctx, txn)
}

func aRecurringTemplateExists(ctx context.Context, frequency, description, date string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	author, err := seededAdmin(ctx, tc)
	if err != nil {
		return err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid template date %q: %w", date, err)
	}

	txn := entity.NewTransaction(
		day,
		description,
		entity.TransactionTypeExpense,
		"Biaya Operasional",
		"Lainnya",
		decimal.NewFromInt(100000),
		"",
		author,
	)
	txn.MarkRecurring(entity.Frequency(frequency))

	repo := persistence.NewTransactionRepository(tc.db.DbConn)
	return repo.Create(ctx, txn)
}

func theJournalShouldHaveTransactions(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	repo := persistence.NewTransactionRepository(tc.db.DbConn)
	transactions, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load journal: %w", err)
	}
	if len(transactions) != expected {
		return fmt.Errorf("expected %d transactions, found %d", expected, len(transactions))
	}
	return nil
}

func thePayrollLedgerShouldHaveEntries(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	repo := persistence.NewPayrollRepository(tc.db.DbConn)
	entries, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load payroll ledger: %w", err)
	}
	if len(entries) != expected {
		return fmt.Errorf("expected %d payroll entries, found %d", expected, len(entries))
	}
	return nil
}

// seededAdmin returns the id of the seeded admin account, used as the author
// of directly inserted records.
func seededAdmin(ctx context.Context, tc *TestContext) (uuid.UUID, error) {
	userRepo := persistence.NewUserRepository(tc.db.DbConn)
	admin, err := userRepo.FindByEmail(ctx, demoEmails["admin"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("seeded admin account missing: %w", err)
	}
	return admin.ID, nil
}
