package queries

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

const (
	DefaultMaxDocs = 60
	MinMaxDocs     = 10
	MaxMaxDocs     = 200

	EmptyMenuAnswer = "No menu items found. Add items to the menu and try again."

	menuSystemPrompt = "You are a concise assistant for a coffee shop menu. ONLY use the given CONTEXT. " +
		"If the context lacks sufficient information to answer, reply exactly: 'Insufficient menu data to answer.'"
)

var (
	ErrAskMenuQueryIsNotConstructed = errors.New(
		"AskMenuQuery must be created via NewAskMenuQuery constructor",
	)

	// ErrMenuQueryFailed wraps every failure after the question was accepted.
	ErrMenuQueryFailed = errors.New("AI menu query failed")
)

// ClampMaxDocs parses the configured sample size. Empty or unparsable input
// falls back to DefaultMaxDocs; numbers are clamped to [MinMaxDocs, MaxMaxDocs].
func ClampMaxDocs(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultMaxDocs
	}
	return min(max(n, MinMaxDocs), MaxMaxDocs)
}

// AskMenuQuery is a free-text question about the menu.
type AskMenuQuery struct {
	question string

	guard guard.ConstructorGuard
}

func NewAskMenuQuery(question string) (AskMenuQuery, error) {
	if strings.TrimSpace(question) == "" {
		return AskMenuQuery{}, errs.NewValueIsRequiredError("question")
	}
	return AskMenuQuery{question: question, guard: guard.NewConstructorGuard()}, nil
}

func (q AskMenuQuery) Validate() error {
	return q.guard.Validate(ErrAskMenuQueryIsNotConstructed)
}

func (q AskMenuQuery) Question() string {
	return q.question
}

type AskMenuResult struct {
	Answer          string
	Model           string
	ItemsConsidered int
	MaxDocs         int
}

// AskMenuQueryHandler answers questions from a bounded snapshot of the menu.
type AskMenuQueryHandler struct {
	menu      ports.MenuRepository
	generator ports.TextGenerator
	maxDocs   int
}

func NewAskMenuQueryHandler(menu ports.MenuRepository, generator ports.TextGenerator, maxDocs int) (*AskMenuQueryHandler, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}
	if generator == nil {
		return nil, errs.NewValueIsRequiredError("generator")
	}
	return &AskMenuQueryHandler{
		menu:      menu,
		generator: generator,
		maxDocs:   min(max(maxDocs, MinMaxDocs), MaxMaxDocs),
	}, nil
}

// Handle never calls the model for an empty menu.
func (h *AskMenuQueryHandler) Handle(ctx context.Context, q AskMenuQuery) (AskMenuResult, error) {
	if err := q.Validate(); err != nil {
		return AskMenuResult{}, err
	}

	result := AskMenuResult{Model: h.generator.Model(), MaxDocs: h.maxDocs}

	items, err := h.menu.List(ctx, h.maxDocs)
	if err != nil {
		return AskMenuResult{}, fmt.Errorf("%w: read menu: %w", ErrMenuQueryFailed, err)
	}
	if len(items) == 0 {
		result.Answer = EmptyMenuAnswer
		return result, nil
	}

	prompt := "CONTEXT:\n" + BuildMenuContext(items, h.maxDocs) + "\n\nQUESTION:\n" + q.Question()
	answer, err := h.generator.Generate(ctx, menuSystemPrompt, prompt)
	if err != nil {
		return AskMenuResult{}, fmt.Errorf("%w: %w", ErrMenuQueryFailed, err)
	}

	result.Answer = answer
	result.ItemsConsidered = len(items)
	return result, nil
}

// BuildMenuContext renders at most limit items, one per line:
//
//	MENU SNAPSHOT (first 2):
//	Latte(Coffee) [Small:$3.00/Large:$4.50]
//	Scone [Regular:$2.75] (unavailable)
func BuildMenuContext(items []*menu.Item, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "MENU SNAPSHOT (first %d):\n", len(items))
	for _, it := range items {
		b.WriteString(menuLine(it))
		b.WriteByte('\n')
	}
	return b.String()
}

func menuLine(it *menu.Item) string {
	sizes := it.Sizes()
	prices := make([]string, 0, len(sizes))
	for _, s := range sizes {
		prices = append(prices, s.Name()+":"+s.Price().String())
	}

	line := it.Name()
	if it.Category() != "" {
		line += "(" + it.Category() + ")"
	}
	line += " [" + strings.Join(prices, "/") + "]"
	if !it.IsAvailable() {
		line += " (unavailable)"
	}
	return line
}
