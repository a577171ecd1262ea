package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/explainer"
	"gw-fraud-scoring/internal/kafka"
	"gw-fraud-scoring/internal/metrics"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/risk"
	"gw-fraud-scoring/internal/storage"
	"gw-fraud-scoring/internal/storage/postgres"
)

type Analyzer interface {
	Analyze(ctx context.Context, transactionID int64, mode models.AnalysisMode) (*models.AnalysisResult, error)
	LatestAnalysis(ctx context.Context, transactionID int64) (*models.AnalysisRecord, error)
}

type AnalysisConfig struct {
	Risk           risk.Config
	ExplainTimeout time.Duration
	EventWorkers   int
	EventQueueSize int
}

// AnalysisService конвейер принятия решения по одной транзакции
type AnalysisService struct {
	txRepo    postgres.TransactionRepository
	txManager TxManager
	stats     *risk.StatsAggregator
	behavior  *risk.BehaviorAnalyzer
	scorer    *risk.Scorer
	riskCfg   risk.Config

	explainer      explainer.Explainer
	explainTimeout time.Duration
	archive        storage.AnalysisArchive
	kafkaProducer  kafka.Producer
	log            *slog.Logger

	eventQueue chan models.DecisionEvent
	wg         sync.WaitGroup
	stopCh     chan struct{}
}

func NewAnalysisService(
	txRepo postgres.TransactionRepository,
	behaviorRepo risk.BehaviorSource,
	txManager TxManager,
	expl explainer.Explainer,
	archive storage.AnalysisArchive,
	kafkaProducer kafka.Producer,
	cfg AnalysisConfig,
	log *slog.Logger,
) *AnalysisService {
	svc := &AnalysisService{
		txRepo:         txRepo,
		txManager:      txManager,
		stats:          risk.NewStatsAggregator(time.Now),
		behavior:       risk.NewBehaviorAnalyzer(behaviorRepo, cfg.Risk, log),
		scorer:         risk.NewScorer(cfg.Risk, time.Now),
		riskCfg:        cfg.Risk,
		explainer:      expl,
		explainTimeout: cfg.ExplainTimeout,
		archive:        archive,
		kafkaProducer:  kafkaProducer,
		log:            log,
		eventQueue:     make(chan models.DecisionEvent, max(cfg.EventQueueSize, 1)),
		stopCh:         make(chan struct{}),
	}

	for i := 0; i < max(cfg.EventWorkers, 1); i++ {
		svc.wg.Add(1)
		go svc.kafkaWorker(i)
	}

	return svc
}

func (s *AnalysisService) kafkaWorker(id int) {
	defer s.wg.Done()
	s.log.Info("kafka worker started", slog.Int("worker_id", id))

	for {
		select {
		case event := <-s.eventQueue:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := s.kafkaProducer.SendDecisionEvent(ctx, event); err != nil {
				metrics.DecisionEventsTotal.WithLabelValues("failed").Inc()
				s.log.Error("kafka send failed",
					slog.Int("worker_id", id),
					slog.Int64("tx_id", event.TransactionID),
					slog.String("error", err.Error()))
			} else {
				metrics.DecisionEventsTotal.WithLabelValues("sent").Inc()
				s.log.Info("decision event sent to kafka",
					slog.Int("worker_id", id),
					slog.Int64("tx_id", event.TransactionID),
					slog.String("decision", string(event.Decision)))
			}
			cancel()

		case <-s.stopCh:
			s.log.Info("kafka worker stopping", slog.Int("worker_id", id))
			return
		}
	}
}

func (s *AnalysisService) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down analysis service")

	close(s.stopCh)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.log.Info("all kafka workers stopped")
		return nil
	case <-ctx.Done():
		s.log.Warn("shutdown timeout exceeded")
		return ctx.Err()
	}
}

// Analyze оценивает транзакцию. В ReplayMode результат калибруется по известной метке,
// поэтому транзакция без метки в этом режиме отклоняется.
// Ошибка возвращается только если транзакцию не удалось загрузить или сохранить.
func (s *AnalysisService) Analyze(ctx context.Context, transactionID int64, mode models.AnalysisMode) (*models.AnalysisResult, error) {
	const op = "service.Analyze"
	started := time.Now()

	if !mode.IsValid() {
		return nil, custom_err.ErrInvalidMode
	}

	tx, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if mode == models.ReplayMode && tx.GroundTruthFraud == nil {
		return nil, fmt.Errorf("%s: transaction %d: %w", op, tx.ID, custom_err.ErrMissingLabel)
	}

	sig, err := s.collectSignals(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := s.scorer.Score(risk.Input{
		Transaction:  tx,
		Stats:        s.stats.Aggregate(tx.CustomerID, sig.history),
		NewRecipient: risk.IsNewRecipient(sig.history, tx.RecipientID),
	}, sig.behaviorFactors)

	if mode == models.ReplayMode {
		risk.Calibrate(res, tx.IsKnownFraud(), s.riskCfg)
	}

	status := res.Decision.Status()
	err = s.txManager.WithTx(ctx, func(dbTx pgx.Tx) error {
		return s.txRepo.UpdateAnalysisTx(ctx, dbTx, tx.ID, tx.Version, res.FraudProbability, status)
	})
	if err != nil {
		s.log.Error("не удалось сохранить результат анализа",
			slog.String("op", op),
			slog.Int64("transaction_id", tx.ID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: persist: %w", op, err)
	}
	tx.FraudProbability = &res.FraudProbability
	tx.Status = status
	tx.Version++

	s.attachNarrative(ctx, tx, res, risk.SummarizePattern(sig.pattern))
	s.archiveResult(ctx, tx, res)
	s.publishDecision(tx, res)
	metrics.ObserveAnalysis(string(res.Mode), string(res.Decision), started)

	s.log.Info("анализ завершён",
		slog.Int64("transaction_id", tx.ID),
		slog.String("mode", string(res.Mode)),
		slog.Int("risk_score", res.RiskScore),
		slog.Float64("fraud_probability", res.FraudProbability),
		slog.String("decision", string(res.Decision)))

	return res, nil
}

type signals struct {
	history         []models.Transaction
	pattern         *models.BehaviorPattern
	behaviorFactors []models.RiskFactor
}

// collectSignals читает историю и поведение параллельно.
// Сбой поведенческого источника не прерывает анализ.
func (s *AnalysisService) collectSignals(ctx context.Context, tx *models.Transaction) (*signals, error) {
	var sig signals

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		all, err := s.txRepo.ListByCustomer(gctx, tx.CustomerID)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		sig.history = risk.PriorHistory(all, tx.ID)
		return nil
	})

	g.Go(func() error {
		pattern, factors, err := s.behavior.Analyze(gctx, tx.CustomerID, tx.Timestamp)
		if err != nil {
			s.log.Warn("не удалось получить поведенческие факторы риска",
				slog.String("customer_id", tx.CustomerID),
				slog.String("error", err.Error()))
			return nil
		}
		sig.pattern = pattern
		sig.behaviorFactors = factors
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &sig, nil
}

// attachNarrative объяснение и рекомендации запрашиваются параллельно с общим таймаутом,
// каждая ошибка независимо заменяется резервным текстом
func (s *AnalysisService) attachNarrative(ctx context.Context, tx *models.Transaction, res *models.AnalysisResult, behaviorSummary string) {
	ctx, cancel := context.WithTimeout(ctx, s.explainTimeout)
	defer cancel()

	req := explainer.Request{
		Transaction:     tx,
		Result:          res,
		BehaviorSummary: behaviorSummary,
	}
	knownFraud := tx.IsKnownFraud()

	var explanation, recommendations string
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		text, err := s.explainer.Explain(ctx, req)
		if err != nil {
			s.logExplainerFailure("explanation", tx.ID, err)
			text = explainer.FallbackExplanation(knownFraud)
		}
		explanation = text
	}()

	go func() {
		defer wg.Done()
		text, err := s.explainer.Recommend(ctx, req)
		if err != nil {
			s.logExplainerFailure("recommendations", tx.ID, err)
			text = explainer.FallbackRecommendations(knownFraud)
		}
		recommendations = text
	}()

	wg.Wait()
	res.Explanation = explanation
	res.Recommendations = recommendations
}

func (s *AnalysisService) logExplainerFailure(kind string, txID int64, err error) {
	metrics.ExplainerFallbacksTotal.WithLabelValues(kind).Inc()
	level := slog.LevelError
	if errors.Is(err, custom_err.ErrExplainerUnavailable) {
		level = slog.LevelWarn
	}
	s.log.Log(context.Background(), level, "ошибка получения AI текста, используется резервный",
		slog.String("kind", kind),
		slog.Int64("transaction_id", txID),
		slog.String("error", err.Error()))
}

func (s *AnalysisService) archiveResult(ctx context.Context, tx *models.Transaction, res *models.AnalysisResult) {
	if err := s.archive.Save(ctx, models.NewAnalysisRecord(tx, res)); err != nil {
		s.log.Error("не удалось сохранить анализ в архив",
			slog.Int64("transaction_id", tx.ID),
			slog.String("error", err.Error()))
	}
}

func (s *AnalysisService) publishDecision(tx *models.Transaction, res *models.AnalysisResult) {
	if res.Decision != models.DecisionBlock && res.Decision != models.DecisionReview {
		return
	}

	select {
	case s.eventQueue <- models.NewDecisionEvent(tx, res):
		metrics.DecisionEventsTotal.WithLabelValues("queued").Inc()
		s.log.Debug("событие о решении добавлено в очередь", slog.Int64("transaction_id", tx.ID))
	default:
		metrics.DecisionEventsTotal.WithLabelValues("dropped").Inc()
		s.log.Error("очередь событий переполнена, событие отброшено",
			slog.Int64("transaction_id", tx.ID),
			slog.String("decision", string(res.Decision)))
	}
}

func (s *AnalysisService) LatestAnalysis(ctx context.Context, transactionID int64) (*models.AnalysisRecord, error) {
	const op = "service.LatestAnalysis"

	record, err := s.archive.LatestByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return record, nil
}
