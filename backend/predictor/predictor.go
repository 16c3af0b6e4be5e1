// Package predictor shells out to the Python risk models. Each model
// is a standalone script taking positional arguments and printing one
// JSON document on stdout; the package distinguishes spawn failures,
// non-zero exits and unparseable output so callers can map them to
// the right HTTP responses.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mindwell/backend/config"
	"mindwell/backend/models"
)

const (
	diabetesScript     = "diabetes_model.py"
	heartDiseaseScript = "heart_disease_model.py"
	mentalHealthScript = "mental_health_model.py"
)

// ErrSpawn wraps failures to start the interpreter at all, as opposed
// to the script running and exiting non-zero.
var ErrSpawn = errors.New("predictor: failed to start model process")

// ErrBadOutput means the script exited zero but did not print valid
// JSON on stdout.
var ErrBadOutput = errors.New("predictor: model output is not valid JSON")

// ExitError carries the stderr of a model run that exited non-zero.
type ExitError struct {
	Script string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("predictor: %s exited with code %d: %s", e.Script, e.Code, e.Stderr)
}

// Runner executes the model scripts. Python and Dir are configurable
// so tests can substitute a stub interpreter and a temp script dir.
type Runner struct {
	Python  string
	Dir     string
	Timeout time.Duration
}

func New(cfg *config.Config) *Runner {
	return &Runner{
		Python:  cfg.PythonBin,
		Dir:     cfg.ModelDir,
		Timeout: time.Duration(cfg.PredictTimeout) * time.Second,
	}
}

// run executes one script and decodes its stdout. The result is kept
// as a generic map so fields the model adds later flow through to the
// client untouched.
func (r *Runner) run(ctx context.Context, script string, args []string) (map[string]interface{}, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmdArgs := append([]string{filepath.Join(r.Dir, script)}, args...)
	cmd := exec.CommandContext(ctx, r.Python, cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Wait must not block past the deadline when a child the script
	// forked keeps the output pipes open after the interpreter is
	// killed.
	cmd.WaitDelay = time.Second

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpawn, err)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				Script: script,
				Code:   exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("predictor: %s: %w", script, err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(stdout.Bytes()), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadOutput, err)
	}
	return result, nil
}

func (r *Runner) Diabetes(ctx context.Context, in models.DiabetesInputs) (map[string]interface{}, error) {
	args := []string{
		formatFloat(in.Pregnancies),
		formatFloat(in.Glucose),
		formatFloat(in.BloodPressure),
		formatFloat(in.SkinThickness),
		formatFloat(in.Insulin),
		formatFloat(in.BMI),
		formatFloat(in.DiabetesPedigreeFunction),
		formatFloat(in.Age),
	}
	return r.run(ctx, diabetesScript, args)
}

// HeartDisease takes pre-stringified arguments because the route
// accepts both numbers and strings for these fields.
func (r *Runner) HeartDisease(ctx context.Context, args []string) (map[string]interface{}, error) {
	return r.run(ctx, heartDiseaseScript, args)
}

// MentalHealth passes the 31 questionnaire answers in fixed order:
// PHQ-9, GAD-7, PSS-10, WHO-5.
func (r *Runner) MentalHealth(ctx context.Context, phq9, gad7, pss, who5 []int) (map[string]interface{}, error) {
	args := make([]string, 0, len(phq9)+len(gad7)+len(pss)+len(who5))
	for _, group := range [][]int{phq9, gad7, pss, who5} {
		for _, v := range group {
			args = append(args, strconv.Itoa(v))
		}
	}
	return r.run(ctx, mentalHealthScript, args)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
