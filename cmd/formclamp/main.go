package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formclamp/pkg/clamp"
	"github.com/goliatone/go-formclamp/pkg/fieldconfig"
	"github.com/goliatone/go-formclamp/pkg/model"
	"github.com/goliatone/go-formclamp/pkg/numfield"
	"github.com/goliatone/go-formclamp/pkg/openapi"
	"github.com/goliatone/go-formclamp/pkg/renderers/tui"
	"github.com/goliatone/go-formclamp/pkg/validation"
)

type options struct {
	min       uint64
	max       uint64
	trace     bool
	config    string
	form      string
	document  string
	operation string
	format    string
	list      bool
	check     string
	verbose   bool
	inputs    []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	logger := newLogger(opts.verbose)
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, opts, os.Stdout, logger, nil); err != nil {
		logger.Error("formclamp failed", zap.Error(err))
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("formclamp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Uint64Var(&opts.min, "min", 0, "lower bound (inclusive)")
	fs.Uint64Var(&opts.max, "max", 0, "upper bound (inclusive)")
	fs.BoolVar(&opts.trace, "trace", false, "print every keystroke while clamping inputs")
	fs.StringVar(&opts.config, "config", "", "directory of YAML/JSON field configuration")
	fs.StringVar(&opts.form, "form", "", "form id to prompt from -config")
	fs.StringVar(&opts.document, "openapi", "", "OpenAPI document to derive fields from")
	fs.StringVar(&opts.operation, "operation", "", "operation id to prompt from -openapi")
	fs.StringVar(&opts.format, "format", string(tui.OutputFormatJSON), "output format for prompts (json|pretty)")
	fs.BoolVar(&opts.list, "list", false, "list the forms available from -config or -openapi")
	fs.StringVar(&opts.check, "check", "", "validate a JSON submission file against the selected form")
	fs.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.inputs = fs.Args()
	return opts, nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// run dispatches on the selected mode. driver overrides the survey prompt
// driver when non-nil.
func run(ctx context.Context, opts options, stdout io.Writer, logger *zap.Logger, driver tui.PromptDriver) error {
	switch {
	case opts.config != "" || opts.document != "":
		forms, err := loadForms(ctx, opts)
		if err != nil {
			return err
		}
		if opts.list {
			return listForms(stdout, forms)
		}
		id := opts.form
		if opts.document != "" {
			id = opts.operation
		}
		form, ok := forms[id]
		if !ok {
			return fmt.Errorf("form %q not found", id)
		}
		if opts.check != "" {
			return checkSubmission(form, opts.check, stdout)
		}
		logger.Debug("prompting form", zap.String("form", id), zap.Int("fields", len(form.Fields)))
		return prompt(ctx, form, opts, stdout, logger, driver)
	case len(opts.inputs) > 0:
		return clampInputs(opts, stdout)
	default:
		return errors.New("nothing to do: pass inputs with -min/-max, or -config/-openapi")
	}
}

func clampInputs(opts options, stdout io.Writer) error {
	if opts.min > uint64(^uint32(0)) || opts.max > uint64(^uint32(0)) {
		return fmt.Errorf("bound [%d, %d] exceeds uint32", opts.min, opts.max)
	}
	field, err := numfield.New(uint32(opts.min), uint32(opts.max))
	if err != nil {
		return err
	}

	for _, input := range opts.inputs {
		if opts.trace {
			writeTrace(stdout, field, input)
			continue
		}
		update := field.Apply(input, len(input))
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", input, update.Text, update.Status)
	}
	return nil
}

func writeTrace(w io.Writer, field *numfield.Field, input string) {
	fmt.Fprintf(w, "%s\n", input)
	for _, update := range field.Type(input) {
		fmt.Fprintf(w, "  %-*s  %s\n", field.Bound().DigitCount(), update.Text, update.Status)
	}
	digits, _ := numfield.Filter(input, 0)
	for _, step := range clamp.Trace(digits, field.Bound()) {
		fmt.Fprintf(w, "  [%d] %c -> %c  %s\n", step.Position, step.Input, step.Output, step.State)
	}
}

func loadForms(ctx context.Context, opts options) (map[string]model.FormModel, error) {
	if opts.document != "" {
		data, err := os.ReadFile(opts.document)
		if err != nil {
			return nil, fmt.Errorf("read openapi document: %w", err)
		}
		return openapi.Forms(ctx, data, openapi.WithResolveReferences(true))
	}

	store, err := fieldconfig.LoadFS(os.DirFS(opts.config))
	if err != nil {
		return nil, err
	}
	forms := make(map[string]model.FormModel)
	for _, id := range store.IDs() {
		form, _ := store.Form(id)
		forms[id] = form
	}
	return forms, nil
}

func listForms(w io.Writer, forms map[string]model.FormModel) error {
	ids := make([]string, 0, len(forms))
	for id := range forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fields, err := forms[id].ClampFields()
		if err != nil {
			return err
		}
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			bound, _, _ := f.Bound()
			names = append(names, f.Name+bound.String())
		}
		fmt.Fprintf(w, "%s\t%s\n", id, strings.Join(names, " "))
	}
	return nil
}

func prompt(ctx context.Context, form model.FormModel, opts options, stdout io.Writer, logger *zap.Logger, driver tui.PromptDriver) error {
	renderer, err := tui.New(
		tui.WithPromptDriver(driver),
		tui.WithOutputFormat(tui.OutputFormat(opts.format)),
		tui.WithLogger(logger),
		tui.WithTheme(tui.Theme{InfoPrefix: "> ", ErrorPrefix: "! "}),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(ctx, form, tui.RenderOptions{})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}

var errSubmissionInvalid = errors.New("submission is invalid")

func checkSubmission(form model.FormModel, path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var values map[string]any
	if err := dec.Decode(&values); err != nil {
		return fmt.Errorf("decode submission: %w", err)
	}

	result := validation.ValidateSubmission(form, values)
	for _, issue := range result.Issues {
		line := issue.Message
		if issue.Field != "" {
			line = issue.Field + ": " + line
		}
		if hint, ok := suggestion(form, issue.Field, values[issue.Field]); ok {
			line += " (nearest: " + hint + ")"
		}
		fmt.Fprintln(stdout, line)
	}
	if !result.Valid {
		return errSubmissionInvalid
	}
	fmt.Fprintln(stdout, "ok")
	return nil
}

func suggestion(form model.FormModel, name string, raw any) (string, bool) {
	if name == "" || raw == nil {
		return "", false
	}
	for _, field := range form.Fields {
		if field.Name != name {
			continue
		}
		bound, ok, err := field.Bound()
		if !ok || err != nil {
			return "", false
		}
		text := fmt.Sprint(raw)
		if len(text) != bound.DigitCount() {
			return "", false
		}
		res, ok := validation.Suggest(bound, text)
		return res.Text, ok
	}
	return "", false
}
