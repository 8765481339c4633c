// Command quiz runs an interactive vocabulary quiz in the terminal.
// It generates questions from the vocabulary pool, records every answer
// (mastery, Leitner box, streak, wrong-answer book), and prints the final
// score.
//
// Usage:
//
//	quiz --user=<uuid> [--movie=<uuid>] [--level=BEGINNER] [--count=10] [--practice]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
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
	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/internal/service/quiz"
	"github.com/cinevocab/backend/internal/service/study"
	"github.com/cinevocab/backend/internal/service/wronganswer"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

func main() {
	userFlag := flag.String("user", "", "user UUID taking the quiz")
	movieFlag := flag.String("movie", "", "restrict to one movie UUID")
	levelFlag := flag.String("level", "", "restrict to one level (BEGINNER, INTERMEDIATE, ADVANCED)")
	countFlag := flag.Int("count", 0, "number of questions (default from config)")
	practiceFlag := flag.Bool("practice", false, "quiz the weak words from the wrong-answer book")
	flag.Parse()

	if *userFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: quiz --user=<uuid> [--movie=<uuid>] [--level=BEGINNER] [--count=10] [--practice]")
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = ctxutil.WithUserID(ctx, userID)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	vocabRepo := vocabularyrepo.New(pool)
	sessions := quizsession.New(pool)

	txm := postgres.NewTxManager(pool)

	wrongSvc := wronganswer.NewService(logger, wrongrepo.New(pool), wronganswer.Config{
		WeaknessLimit: cfg.Quiz.HistoryLimit,
	})
	studySvc := study.NewService(
		logger,
		masteryrepo.New(pool),
		vocabRepo,
		wrongSvc,
		streakrepo.New(pool),
		sessions,
		txm,
		study.Config{
			BoxIntervals:      cfg.SRS.BoxIntervals,
			MasteredThreshold: cfg.SRS.MasteredThreshold,
			Location:          cfg.SRS.Location(),
		},
	)
	quizSvc := quiz.NewService(logger, vocabRepo, sessions, studySvc, wrongSvc, txm, quiz.Config{
		DefaultQuestionCount: cfg.Quiz.DefaultQuestionCount,
		MaxQuestionCount:     cfg.Quiz.MaxQuestionCount,
		DistractorRetries:    cfg.Quiz.DistractorRetries,
		HistoryLimit:         cfg.Quiz.HistoryLimit,
	})

	input := quiz.GenerateInput{Count: *countFlag}
	if *movieFlag != "" {
		movieID, err := uuid.Parse(*movieFlag)
		if err != nil {
			log.Fatalf("invalid --movie: %v", err)
		}
		input.MovieID = &movieID
	}
	if *levelFlag != "" {
		level := domain.Level(strings.ToUpper(*levelFlag))
		if !level.IsValid() {
			log.Fatalf("invalid --level %q", *levelFlag)
		}
		input.Level = &level
	}

	var questions []domain.Question
	if *practiceFlag {
		questions, err = quizSvc.PracticeQuestions(ctx, *countFlag)
	} else {
		questions, err = quizSvc.Generate(ctx, input)
	}
	if err != nil {
		logger.Error("generate quiz", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(questions) == 0 {
		if *practiceFlag {
			fmt.Println("Nothing to practice: the wrong-answer book is empty.")
		} else {
			fmt.Println("No quiz possible: the vocabulary pool is too small for the given filters.")
		}
		return
	}

	session, err := quizSvc.StartSession(ctx, input.MovieID, questions)
	if err != nil {
		logger.Error("start session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	answers := make([]string, 0, len(questions))

	for i, q := range questions {
		fmt.Printf("\nQuestion %d/%d [%s]\n%s\n", i+1, len(questions), q.Type, prompt(q))
		if q.Hint != nil {
			fmt.Printf("Hint: %s\n", *q.Hint)
		}
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		answer, ok := readAnswer(reader, q)
		if !ok {
			fmt.Println("\nQuiz abandoned; progress so far is saved.")
			if _, err := quizSvc.FinishSession(ctx, quiz.FinishSessionInput{
				SessionID: session.ID,
				Abandoned: true,
			}); err != nil {
				logger.Error("abandon session", slog.String("error", err.Error()))
			}
			return
		}
		answers = append(answers, answer)

		if _, err := quizSvc.SubmitAnswer(ctx, quiz.SubmitAnswerInput{
			SessionID:  session.ID,
			Question:   q,
			UserAnswer: answer,
		}); err != nil {
			logger.Error("submit answer", slog.String("error", err.Error()))
			os.Exit(1)
		}

		if answer == q.CorrectAnswer {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Wrong. The answer was: %s\n", q.CorrectAnswer)
		}
		if q.Explanation != nil {
			fmt.Printf("From the movie: %s\n", *q.Explanation)
		}
	}

	if _, err := quizSvc.FinishSession(ctx, quiz.FinishSessionInput{SessionID: session.ID}); err != nil {
		logger.Error("finish session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	score := quiz.Score(questions[:len(answers)], answers)
	fmt.Printf("\nDone: %d/%d correct (%d%%)\n", score.Correct, score.Total, score.Percentage)
}

func prompt(q domain.Question) string {
	switch q.Type {
	case domain.QuestionTypeWordToMeaning:
		return fmt.Sprintf("What does %q mean?", q.Text)
	case domain.QuestionTypeMeaningToWord:
		return fmt.Sprintf("Which word means %q?", q.Text)
	case domain.QuestionTypeClozeToMeaning:
		return fmt.Sprintf("%s\nWhat does the missing word mean?", q.Text)
	default:
		return q.Text
	}
}

// readAnswer reads a 1-based option number from stdin. Returns false on EOF
// or the literal "q".
func readAnswer(reader *bufio.Reader, q domain.Question) (string, bool) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line == "q" {
			return "", false
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Printf("Enter a number between 1 and %d, or q to quit.\n", len(q.Options))
			continue
		}
		return q.Options[n-1], true
	}
}
