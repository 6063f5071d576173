// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"

	"github.com/financeflow/backend/internal/domain/entity"
)

// GeminiService implements the AdvisorService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise summarizes the journal and asks Gemini for advisory text in
// Indonesian.
func (s *GeminiService) Advise(ctx context.Context, transactions []*entity.Transaction) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(transactions)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractText(resp), nil
}

// buildPrompt creates the advisory prompt for Gemini.
func (s *GeminiService) buildPrompt(transactions []*entity.Transaction) string {
	income, expense := decimal.Zero, decimal.Zero
	for _, txn := range transactions {
		if txn.Type == entity.TransactionTypeIncome {
			income = income.Add(txn.Amount)
		} else {
			expense = expense.Add(txn.Amount)
		}
	}

	var sb strings.Builder
	sb.WriteString("Bertindaklah sebagai penasihat keuangan senior.\n")
	sb.WriteString("Berdasarkan data berikut:\n")
	fmt.Fprintf(&sb, "Total Pemasukan: Rp %s\n", income.String())
	fmt.Fprintf(&sb, "Total Pengeluaran: Rp %s\n", expense.String())
	fmt.Fprintf(&sb, "Saldo Saat Ini: Rp %s\n\n", income.Sub(expense).String())
	fmt.Fprintf(&sb, "Jumlah Transaksi: %d\n\n", len(transactions))
	sb.WriteString("Tolong berikan ringkasan singkat dalam Bahasa Indonesia tentang kondisi keuangan ini ")
	sb.WriteString("dan berikan 2 saran praktis untuk meningkatkan efisiensi atau mengelola pengeluaran.")
	return sb.String()
}

// extractText flattens the first candidate's text parts.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
