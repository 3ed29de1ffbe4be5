package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/apperrors"
	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/core/ports"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/core/reporting"
	"github.com/minhvu-dev/personal_finance_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Fixed user-facing messages. The dashboard shows these verbatim, so they
// stay in the app's display language.
const (
	msgNotEnoughData       = "Chưa đủ dữ liệu chi tiêu để tạo thông tin chi tiết. Hãy thêm một vài giao dịch nữa."
	msgInsightsUnavailable = "Tính năng AI không khả dụng. Vui lòng định cấu hình khóa API của bạn."
	msgInsightsFailed      = "Rất tiếc, đã xảy ra lỗi khi tạo thông tin chi tiết về tài chính."
)

// minExpensesForInsights is the minimum number of expense transactions
// required before tips are worth generating.
const minExpensesForInsights = 5

// topCategoryCount is how many top spending categories the prompt names.
const topCategoryCount = 3

// insightsService implements the InsightsSvcFacade interface. The external
// call runs under a timeout and an in-flight flag rejects re-entrant
// requests, so a hung text-generation backend cannot wedge the dashboard.
type insightsService struct {
	BaseService
	txnRepo     ports.TransactionRepository
	categorySvc portssvc.CategorySvcFacade
	generator   ports.TextGenerator // nil when no API key is configured
	timeout     time.Duration
	inFlight    atomic.Bool
}

// NewInsightsService creates a new insights service. Pass a nil generator
// when no credential is configured; requests then return the fixed
// feature-unavailable message.
func NewInsightsService(txnRepo ports.TransactionRepository, categorySvc portssvc.CategorySvcFacade, generator ports.TextGenerator, timeout time.Duration) portssvc.InsightsSvcFacade {
	return &insightsService{
		txnRepo:     txnRepo,
		categorySvc: categorySvc,
		generator:   generator,
		timeout:     timeout,
	}
}

var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

// GetFinancialInsights asks the external text-generation service for three
// short money-saving tips based on recent spending. Guard conditions and
// call failures are converted to fixed displayable messages, never errors.
func (s *insightsService) GetFinancialInsights(ctx context.Context) (string, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return "", apperrors.ErrInsightsInFlight
	}
	defer s.inFlight.Store(false)

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for insights")
		return msgInsightsFailed, nil
	}

	expenses := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Type == domain.Expense {
			expenses = append(expenses, t)
		}
	}
	if len(expenses) < minExpensesForInsights {
		return msgNotEnoughData, nil
	}

	if s.generator == nil {
		return msgInsightsUnavailable, nil
	}

	summary := reporting.Summarize(expenses)
	spends := reporting.ByCategory(expenses, s.categorySvc.ListCategories(ctx))
	top := reporting.TopCategories(spends, topCategoryCount)

	prompt := buildInsightsPrompt(summary.TotalExpense, top)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateText(callCtx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Text generation call failed")
		return msgInsightsFailed, nil
	}

	s.LogInfo(ctx, "Insights generated",
		slog.Int("expense_transactions", len(expenses)),
		slog.Int("prompt_len", len(prompt)))
	return text, nil
}

// buildInsightsPrompt embeds the aggregated figures into the fixed prompt
// template the tips are requested with.
func buildInsightsPrompt(totalExpense decimal.Decimal, top []reporting.CategorySpend) string {
	parts := make([]string, 0, len(top))
	for _, c := range top {
		parts = append(parts, fmt.Sprintf("%s: %s VND", c.Name, utils.FormatVND(c.Value)))
	}
	topCategories := strings.Join(parts, ", ")

	return fmt.Sprintf(`Dựa trên bản tóm tắt chi tiêu sau đây bằng tiếng Việt, hãy đưa ra ba mẹo hữu ích, ngắn gọn để tiết kiệm tiền.
Hãy trả lời bằng tiếng Việt.
- Tổng chi tiêu gần đây: %s VND
- Các hạng mục chi tiêu hàng đầu: %s

Ví dụ về định dạng phản hồi mong muốn:
1. Mẹo một ở đây.
2. Mẹo hai ở đây.
3. Mẹo ba ở đây.`, utils.FormatVND(totalExpense), topCategories)
}
