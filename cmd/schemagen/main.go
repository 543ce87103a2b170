// Command schemagen derives the answer schema of a consent form definition.
//
//	schemagen -in form.json -base patientName,cpf,birthDate -strict
//
// The definition is either a bare question array or an object with a
// "questions" array. The schema is printed to stdout as JSON.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/kralluz/imec-formularios-app/internal/app/drivers/logger"
	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/kralluz/imec-formularios-app/internal/pkg/formschema"
	"github.com/kralluz/imec-formularios-app/internal/pkg/utils"
	"github.com/sirupsen/logrus"
)

var errDuplicateIDs = errors.New("question tree repeats ids")

type options struct {
	input   string
	base    string
	strict  bool
	verbose bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	log := logger.NewLogrusLogger(utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment), opts.verbose)
	if err := run(opts, os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Error("schemagen failed")
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("schemagen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.input, "in", "-", "form definition file, - for stdin")
	fs.StringVar(&opts.base, "base", strings.Join(formschema.DefaultBaseFieldIDs, ","), "comma separated base field ids")
	fs.BoolVar(&opts.strict, "strict", false, "fail when question ids are repeated")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	err := fs.Parse(args)
	return opts, err
}

func run(opts options, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	raw, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}

	questions, err := decodeQuestions(raw)
	if err != nil {
		return err
	}
	log.WithField("questions", len(questions)).Debug("decoded form definition")

	duplicates := formschema.DuplicateIDs(questions)
	if len(duplicates) > 0 {
		entry := log.WithField("ids", strings.Join(duplicates, ","))
		if opts.strict {
			entry.Error("duplicate question ids")
			return errDuplicateIDs
		}
		entry.Warn("duplicate question ids; the last occurrence wins")
	}

	formschema.Walk(questions, func(q formschema.Question, depth int) {
		if !q.Type.IsKnown() {
			log.WithFields(logrus.Fields{"id": q.ID, "type": q.Type, "depth": depth}).
				Warn("unknown question type; field accepts any value")
		}
	})

	base := formschema.NewBaseFieldSet(strings.Split(opts.base, ",")...)
	schema := formschema.Derive(questions, base)
	log.WithField("fields", schema.Len()).Info("schema derived")

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(schema)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func decodeQuestions(raw []byte) ([]formschema.Question, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty form definition")
	}

	if raw[0] == '[' {
		var questions []formschema.Question
		if err := json.Unmarshal(raw, &questions); err != nil {
			return nil, fmt.Errorf("decode question array: %w", err)
		}
		return questions, nil
	}

	var definition struct {
		Questions []formschema.Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &definition); err != nil {
		return nil, fmt.Errorf("decode form definition: %w", err)
	}
	return definition.Questions, nil
}
