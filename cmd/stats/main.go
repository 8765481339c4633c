// Command stats prints a user's learning dashboard: catalog coverage, the
// Leitner box distribution, due reviews, quiz history, and the weakness
// report from the wrong-answer book.
//
// Usage:
//
//	stats --user=<uuid> [--due] [--weakness] [--history]
//
// With no section flags all sections are printed.
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/adapter/postgres"
	masteryrepo "github.com/cinevocab/backend/internal/adapter/postgres/mastery"
	"github.com/cinevocab/backend/internal/adapter/postgres/quizsession"
	streakrepo "github.com/cinevocab/backend/internal/adapter/postgres/streak"
	vocabularyrepo "github.com/cinevocab/backend/internal/adapter/postgres/vocabulary"
	wrongrepo "github.com/cinevocab/backend/internal/adapter/postgres/wronganswer"
	"github.com/cinevocab/backend/internal/app"
	"github.com/cinevocab/backend/internal/config"
	"github.com/cinevocab/backend/internal/service/study"
	"github.com/cinevocab/backend/internal/service/wronganswer"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

func main() {
	userFlag := flag.String("user", "", "user UUID to report on")
	dueFlag := flag.Bool("due", false, "print only the due review queue")
	weaknessFlag := flag.Bool("weakness", false, "print only the weakness report")
	historyFlag := flag.Bool("history", false, "print only the quiz history")
	flag.Parse()

	if *userFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: stats --user=<uuid> [--due] [--weakness] [--history]")
		os.Exit(1)
	}
	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("invalid --user: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = ctxutil.WithUserID(ctx, userID)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	sessions := quizsession.New(pool)
	wrongSvc := wronganswer.NewService(logger, wrongrepo.New(pool), wronganswer.Config{
		WeaknessLimit: cfg.Quiz.HistoryLimit,
	})
	studySvc := study.NewService(
		logger,
		masteryrepo.New(pool),
		vocabularyrepo.New(pool),
		wrongSvc,
		streakrepo.New(pool),
		sessions,
		postgres.NewTxManager(pool),
		study.Config{
			BoxIntervals:      cfg.SRS.BoxIntervals,
			MasteredThreshold: cfg.SRS.MasteredThreshold,
			Location:          cfg.SRS.Location(),
		},
	)

	all := !*dueFlag && !*weaknessFlag && !*historyFlag

	if all {
		dash, err := studySvc.Dashboard(ctx)
		if err != nil {
			logger.Error("load dashboard", slog.String("error", err.Error()))
			os.Exit(1)
		}

		fmt.Printf("Vocabulary: %d total, %d mastered, %d never studied\n",
			dash.TotalVocabulary, dash.MasteredCount, dash.NeverStudied)
		fmt.Printf("Due today: %d\n", dash.DueCount)
		fmt.Printf("Quizzes: %d completed", dash.TotalQuizzes)
		if dash.AverageScore != nil {
			fmt.Printf(", average score %.0f%%", *dash.AverageScore)
		}
		fmt.Println()
		fmt.Printf("Streak: %d days\n", dash.CurrentStreak)
		if len(dash.BoxCounts) > 0 {
			fmt.Println("Boxes:")
			for _, bc := range dash.BoxCounts {
				fmt.Printf("  box %d: %d words\n", bc.Box, bc.Count)
			}
		}
	}

	if all || *dueFlag {
		due, err := studySvc.DueReviews(ctx)
		if err != nil {
			logger.Error("load due reviews", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("\nDue for review (%d):\n", len(due))
		for _, r := range due {
			fmt.Printf("  %-24s box %d  %s\n", r.Vocabulary.Word, r.Record.SRSBox, r.Vocabulary.Definition)
		}
	}

	if all || *weaknessFlag {
		spots, err := wrongSvc.Weakness(ctx)
		if err != nil {
			logger.Error("load weakness report", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("\nWeak spots (%d):\n", len(spots))
		for _, s := range spots {
			fmt.Printf("  %-24s missed %d times (worst streak %d)\n", s.Word, s.TotalWrong, s.MaxTimesWrong)
		}
	}

	if all || *historyFlag {
		history, err := sessions.ListCompleted(ctx, userID, cfg.Quiz.HistoryLimit)
		if err != nil {
			logger.Error("load quiz history", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("\nQuiz history (%d):\n", len(history))
		for _, s := range history {
			when := ""
			if s.CompletedAt != nil {
				when = s.CompletedAt.Format("2006-01-02 15:04")
			}
			fmt.Printf("  %s  %d/%d correct\n", when, s.CorrectAnswers, s.TotalQuestions)
		}
	}
}
