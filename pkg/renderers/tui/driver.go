package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a basic text input prompt. Validator runs against
// the raw answer; Transform rewrites an accepted answer before it is
// returned and echoed.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
	Transform func(string) string
}

// PromptDriver abstracts the actual TUI implementation so render logic can be
// tested without a real terminal and callers can swap implementations.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out io.Writer
}

func newSurveyDriver() PromptDriver {
	return &surveyDriver{out: os.Stdout}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	question := &survey.Question{
		Name: "value",
		Prompt: &survey.Input{
			Message: cfg.Message,
			Help:    cfg.Help,
			Default: cfg.Default,
		},
	}
	if cfg.Validator != nil {
		validate := cfg.Validator
		question.Validate = func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}
	}
	if cfg.Transform != nil {
		question.Transform = survey.TransformString(cfg.Transform)
	}

	answers := struct {
		Value string `survey:"value"`
	}{}
	if err := survey.Ask([]*survey.Question{question}, &answers); err != nil {
		return "", translateSurveyErr(err)
	}
	return answers.Value, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
