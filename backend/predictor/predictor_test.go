package predictor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mindwell/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner writes a shell script under the given name and returns a
// Runner that executes it with /bin/sh instead of a Python
// interpreter. The wire contract is the same: args in, JSON on stdout.
func stubRunner(t *testing.T, script, body string) *Runner {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, script), []byte(body), 0o755)
	require.NoError(t, err)
	return &Runner{Python: "/bin/sh", Dir: dir, Timeout: 10 * time.Second}
}

func TestDiabetesDecodesOutput(t *testing.T) {
	r := stubRunner(t, diabetesScript, `#!/bin/sh
echo '{"prediction": 1, "probability": 0.82, "risk": "High", "confidence": 0.82}'
`)

	result, err := r.Diabetes(context.Background(), models.DiabetesInputs{
		Pregnancies: 2, Glucose: 180, BloodPressure: 90, SkinThickness: 30,
		Insulin: 120, BMI: 34.5, DiabetesPedigreeFunction: 0.8, Age: 52,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1), result["prediction"])
	assert.Equal(t, 0.82, result["probability"])
	assert.Equal(t, "High", result["risk"])
}

func TestDiabetesArgumentOrder(t *testing.T) {
	// The stub echoes its args back so the positional contract can be
	// checked end to end.
	r := stubRunner(t, diabetesScript, `#!/bin/sh
printf '{"args": "%s"}' "$*"
`)

	result, err := r.Diabetes(context.Background(), models.DiabetesInputs{
		Pregnancies: 1, Glucose: 2, BloodPressure: 3, SkinThickness: 4,
		Insulin: 5, BMI: 6.5, DiabetesPedigreeFunction: 0.25, Age: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 5 6.5 0.25 8", result["args"])
}

func TestHeartDiseasePassesRawArgs(t *testing.T) {
	r := stubRunner(t, heartDiseaseScript, `#!/bin/sh
printf '{"args": "%s"}' "$*"
`)

	result, err := r.HeartDisease(context.Background(),
		[]string{"63", "1", "3", "145", "233", "1", "0", "150", "0", "2.3", "0"})
	require.NoError(t, err)
	assert.Equal(t, "63 1 3 145 233 1 0 150 0 2.3 0", result["args"])
}

func TestMentalHealthFlattensAnswerGroups(t *testing.T) {
	r := stubRunner(t, mentalHealthScript, `#!/bin/sh
printf '{"count": %d}' $#
`)

	result, err := r.MentalHealth(context.Background(),
		make([]int, 9), make([]int, 7), make([]int, 10), make([]int, 5))
	require.NoError(t, err)
	assert.Equal(t, float64(31), result["count"])
}

func TestExitErrorCarriesStderr(t *testing.T) {
	r := stubRunner(t, diabetesScript, `#!/bin/sh
echo 'Traceback: model blew up' >&2
exit 1
`)

	_, err := r.Diabetes(context.Background(), models.DiabetesInputs{})
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Equal(t, "Traceback: model blew up", exitErr.Stderr)
}

func TestBadOutputIsDistinctError(t *testing.T) {
	r := stubRunner(t, diabetesScript, `#!/bin/sh
echo 'not json at all'
`)

	_, err := r.Diabetes(context.Background(), models.DiabetesInputs{})
	assert.ErrorIs(t, err, ErrBadOutput)
}

func TestSpawnFailure(t *testing.T) {
	r := &Runner{
		Python:  "/nonexistent/python3",
		Dir:     t.TempDir(),
		Timeout: 10 * time.Second,
	}

	_, err := r.Diabetes(context.Background(), models.DiabetesInputs{})
	assert.ErrorIs(t, err, ErrSpawn)
}

func TestTimeoutKillsProcess(t *testing.T) {
	r := stubRunner(t, diabetesScript, `#!/bin/sh
sleep 30
`)
	r.Timeout = 100 * time.Millisecond

	start := time.Now()
	_, err := r.Diabetes(context.Background(), models.DiabetesInputs{})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestTimeoutNotExtendedByChildren(t *testing.T) {
	// The shell spawns sleep as a child that inherits the output pipes.
	// Killing the shell at the deadline must not leave the call blocked
	// until the child lets go of them.
	r := stubRunner(t, diabetesScript, `#!/bin/sh
sleep 8
echo '{}'
`)
	r.Timeout = 200 * time.Millisecond

	start := time.Now()
	_, err := r.Diabetes(context.Background(), models.DiabetesInputs{})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
