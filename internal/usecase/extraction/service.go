package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/domain/entities"
	"github.com/johnquangdev/meeting-intelligence/internal/domain/repositories"
)

const (
	extractionTemperature = 0.3
	extractionMaxTokens   = 2000
)

// ChatClient is the language model dependency. Satisfied by ai.GroqClient.
type ChatClient interface {
	Configured() bool
	ChatCompletion(ctx context.Context, system, prompt string, temperature float64, maxTokens int) (string, error)
}

// Result holds the typed output of one extraction run. Failures records
// per-category soft failures (model error or unparseable output) keyed by
// category name; a failed category contributes no items but never aborts the
// other three.
type Result struct {
	MeetingID         uuid.UUID
	Decisions         []*entities.Decision
	ActionItems       []*entities.ActionItem
	FollowUps         []*entities.FollowUp
	ProblemStatements []*entities.ProblemStatement
	Failures          map[string]string
}

// TotalItems returns the number of items across all categories
func (r *Result) TotalItems() int {
	return len(r.Decisions) + len(r.ActionItems) + len(r.FollowUps) + len(r.ProblemStatements)
}

// Service runs structured extraction over a cleaned transcript. The four
// categories are independent prompts against the same transcript, so they run
// concurrently.
type Service struct {
	llm         ChatClient
	parser      *Parser
	extractions repositories.ExtractionRepository
	logger      *zap.Logger
}

// NewService creates an extraction service
func NewService(llm ChatClient, extractions repositories.ExtractionRepository, logger *zap.Logger) *Service {
	return &Service{
		llm:         llm,
		parser:      NewParser(),
		extractions: extractions,
		logger:      logger,
	}
}

// Extract runs all four category prompts against the transcript and returns
// the typed results. A whitespace-only transcript is rejected up front; an
// unconfigured model client means no category can run at all.
func (s *Service) Extract(ctx context.Context, meetingID uuid.UUID, transcript string) (*Result, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, entities.ErrNoTranscript
	}
	if !s.llm.Configured() {
		return nil, fmt.Errorf("%w: model api key not set", entities.ErrExtractionUnavailable)
	}

	result := &Result{
		MeetingID: meetingID,
		Failures:  make(map[string]string),
	}
	var mu sync.Mutex
	var wg sync.WaitGroup

	fail := func(category, reason string) {
		mu.Lock()
		result.Failures[category] = reason
		mu.Unlock()
		s.logger.Warn("extraction category failed",
			zap.String("meeting_id", meetingID.String()),
			zap.String("category", category),
			zap.String("reason", reason),
		)
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		content, err := s.llm.ChatCompletion(ctx, systemPrompt, buildDecisionsPrompt(transcript), extractionTemperature, extractionMaxTokens)
		if err != nil {
			fail("decisions", err.Error())
			return
		}
		decisions, err := s.parser.ParseDecisions(meetingID, content)
		if err != nil {
			fail("decisions", err.Error())
			return
		}
		result.Decisions = decisions
	}()

	go func() {
		defer wg.Done()
		content, err := s.llm.ChatCompletion(ctx, systemPrompt, buildActionItemsPrompt(transcript), extractionTemperature, extractionMaxTokens)
		if err != nil {
			fail("action_items", err.Error())
			return
		}
		items, err := s.parser.ParseActionItems(meetingID, content)
		if err != nil {
			fail("action_items", err.Error())
			return
		}
		result.ActionItems = items
	}()

	go func() {
		defer wg.Done()
		content, err := s.llm.ChatCompletion(ctx, systemPrompt, buildFollowUpsPrompt(transcript), extractionTemperature, extractionMaxTokens)
		if err != nil {
			fail("follow_ups", err.Error())
			return
		}
		followUps, err := s.parser.ParseFollowUps(meetingID, content)
		if err != nil {
			fail("follow_ups", err.Error())
			return
		}
		result.FollowUps = followUps
	}()

	go func() {
		defer wg.Done()
		content, err := s.llm.ChatCompletion(ctx, systemPrompt, buildProblemsPrompt(transcript), extractionTemperature, extractionMaxTokens)
		if err != nil {
			fail("problem_statements", err.Error())
			return
		}
		problems, err := s.parser.ParseProblemStatements(meetingID, content)
		if err != nil {
			fail("problem_statements", err.Error())
			return
		}
		result.ProblemStatements = problems
	}()

	wg.Wait()

	s.logger.Info("extraction finished",
		zap.String("meeting_id", meetingID.String()),
		zap.Int("decisions", len(result.Decisions)),
		zap.Int("action_items", len(result.ActionItems)),
		zap.Int("follow_ups", len(result.FollowUps)),
		zap.Int("problem_statements", len(result.ProblemStatements)),
		zap.Int("failed_categories", len(result.Failures)),
	)
	return result, nil
}

// Persist stores the extraction result. Each category is written
// independently so one failing insert does not discard the rest; the
// collected errors are returned after every category has been attempted.
func (s *Service) Persist(ctx context.Context, result *Result) error {
	var errs []error

	if len(result.Decisions) > 0 {
		if err := s.extractions.InsertDecisions(ctx, result.Decisions); err != nil {
			errs = append(errs, fmt.Errorf("decisions: %w", err))
		}
	}
	if len(result.ActionItems) > 0 {
		if err := s.extractions.InsertActionItems(ctx, result.ActionItems); err != nil {
			errs = append(errs, fmt.Errorf("action_items: %w", err))
		}
	}
	if len(result.FollowUps) > 0 {
		if err := s.extractions.InsertFollowUps(ctx, result.FollowUps); err != nil {
			errs = append(errs, fmt.Errorf("follow_ups: %w", err))
		}
	}
	if len(result.ProblemStatements) > 0 {
		if err := s.extractions.InsertProblemStatements(ctx, result.ProblemStatements); err != nil {
			errs = append(errs, fmt.Errorf("problem_statements: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to persist extraction: %w", errors.Join(errs...))
	}
	return nil
}
