//go:build cucumber

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"quizbank/internal/question"
)

// TestQuestionBankScenarios runs the command line feature scenarios.
func TestQuestionBankScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name: "questions",
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			InitializeQuestionBankScenario(ctx, t)
		},
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{filepath.Join("testdata", "features")},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeQuestionBankScenario wires steps for question bank scenarios.
func InitializeQuestionBankScenario(ctx *godog.ScenarioContext, t *testing.T) {
	state := &bankScenarioState{t: t}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a question bank file "([^"]+)"$`, state.givenBankFile)
	ctx.Step(`^I run "([^"]+)"$`, state.whenIRun)
	ctx.Step(`^the exit code is (\d+)$`, state.thenExitCode)
	ctx.Step(`^stdout contains "([^"]+)"$`, state.thenStdoutContains)
	ctx.Step(`^stderr contains "([^"]+)"$`, state.thenStderrContains)
	ctx.Step(`^the printed bank has names "([^"]+)"$`, state.thenNames)
	ctx.Step(`^the printed bank has ids "([^"]+)"$`, state.thenIDs)
	ctx.Step(`^question (\d+) in the printed bank has (\d+) options$`, state.thenOptionCount)
	ctx.Step(`^the printed bank is worth (\d+) published points$`, state.thenPublishedPoints)
}

type bankScenarioState struct {
	t      *testing.T
	path   string
	code   int
	stdout string
	stderr string
}

// reset clears scenario state.
func (s *bankScenarioState) reset() {
	s.path = ""
	s.code = -1
	s.stdout = ""
	s.stderr = ""
}

func (s *bankScenarioState) givenBankFile(name string) error {
	s.path = writeBank(s.t, name, sampleBankYAML)
	return nil
}

func (s *bankScenarioState) whenIRun(command string) error {
	fields := strings.Fields(command)
	args := append([]string{fields[0], "--file", s.path}, fields[1:]...)
	s.code, s.stdout, s.stderr = runCLI(args...)
	return nil
}

func (s *bankScenarioState) thenExitCode(code int) error {
	if s.code != code {
		return fmt.Errorf("expected exit %d, got %d (stderr %q)", code, s.code, s.stderr)
	}
	return nil
}

func (s *bankScenarioState) thenStdoutContains(want string) error {
	if !strings.Contains(s.stdout, want) {
		return fmt.Errorf("expected %q in stdout, got %q", want, s.stdout)
	}
	return nil
}

func (s *bankScenarioState) thenStderrContains(want string) error {
	if !strings.Contains(s.stderr, want) {
		return fmt.Errorf("expected %q in stderr, got %q", want, s.stderr)
	}
	return nil
}

// printedBank decodes the bank an edit command wrote to stdout.
func (s *bankScenarioState) printedBank() (question.Bank, error) {
	return question.ParseBank([]byte(s.stdout), question.FormatForPath(s.path))
}

func (s *bankScenarioState) thenNames(list string) error {
	bank, err := s.printedBank()
	if err != nil {
		return err
	}
	want := strings.Split(list, ", ")
	if got := question.GetNames(bank.Questions); !reflect.DeepEqual(got, want) {
		return fmt.Errorf("expected names %v, got %v", want, got)
	}
	return nil
}

func (s *bankScenarioState) thenIDs(list string) error {
	bank, err := s.printedBank()
	if err != nil {
		return err
	}
	got := make([]string, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		got = append(got, strconv.Itoa(q.ID))
	}
	if strings.Join(got, ", ") != list {
		return fmt.Errorf("expected ids %s, got %s", list, strings.Join(got, ", "))
	}
	return nil
}

func (s *bankScenarioState) thenOptionCount(id, count int) error {
	bank, err := s.printedBank()
	if err != nil {
		return err
	}
	q, ok := question.FindQuestion(bank.Questions, id)
	if !ok {
		return fmt.Errorf("question %d not in printed bank", id)
	}
	if len(q.Options) != count {
		return fmt.Errorf("expected %d options, got %v", count, q.Options)
	}
	return nil
}

func (s *bankScenarioState) thenPublishedPoints(points int) error {
	bank, err := s.printedBank()
	if err != nil {
		return err
	}
	if got := question.SumPublishedPoints(bank.Questions); got != points {
		return fmt.Errorf("expected %d published points, got %d", points, got)
	}
	return nil
}
